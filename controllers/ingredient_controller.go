package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/minsmanse/bar/pkg/resp"
	"github.com/minsmanse/bar/services"
)

type IngredientController struct {
	Service *services.IngredientService
}

func NewIngredientController(service *services.IngredientService) *IngredientController {
	return &IngredientController{Service: service}
}

// GET /ingredients
func (ic *IngredientController) List(c *gin.Context) {
	ingredients, err := ic.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ingredients)
}

// POST /ingredients
func (ic *IngredientController) Create(c *gin.Context) {
	var req services.CreateIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ing, err := ic.Service.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, ing)
}

// DELETE /ingredients/:id
func (ic *IngredientController) Delete(c *gin.Context) {
	if err := ic.Service.Delete(c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "ingredient deleted"})
}
