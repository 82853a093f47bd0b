package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/minsmanse/bar/pkg/resp"
	"github.com/minsmanse/bar/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GET /orders → full snapshot for a (re)connecting viewer
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Place(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, order)
}

type BatchReq struct {
	OrderIDs []string `json:"orderIds" binding:"required"`
}

// POST /orders/batch → a guest's personal history, newest first.
// Unknown ids are dropped from the result, not errors.
func (oc *OrderController) Batch(c *gin.Context) {
	var req BatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orders, err := oc.Service.History(req.OrderIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}
