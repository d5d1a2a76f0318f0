package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List returns the caller's order history, newest first.
func (oc *OrderController) List(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	resp, aerr := oc.orders.UserOrders(c.Request.Context(), session.UserID, page, limit)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one order owned by the caller.
func (oc *OrderController) Get(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	order, aerr := oc.orders.GetOrder(c.Request.Context(), session, c.Param("id"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, order)
}
