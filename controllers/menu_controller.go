package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/pkg/blend"
	"github.com/minsmanse/bar/pkg/resp"
	"github.com/minsmanse/bar/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// menuItemView rounds the stored abv to one decimal for display. The outer
// field shadows the embedded one, so storage keeps full precision.
type menuItemView struct {
	entity.MenuItem
	FinalAbv float64 `json:"finalAbv"`
}

func toView(item entity.MenuItem) menuItemView {
	return menuItemView{MenuItem: item, FinalAbv: blend.Round1(item.FinalAbv)}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toView(item))
	}
	resp.OK(c, views)
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, toView(*item))
}
