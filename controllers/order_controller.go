package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
)

// OrderController maps order endpoints to the order service.
type OrderController struct {
	service OrderServiceAPI
	env     string
}

func NewOrderController(service OrderServiceAPI, env string) *OrderController {
	return &OrderController{service: service, env: env}
}

// CreateOrder handles POST /api/orders.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		respondError(c, oc.env, apperrors.Validation("Invalid JSON payload"))
		return
	}

	created, err := oc.service.Create(c.Request.Context(), order)
	if err != nil {
		respondError(c, oc.env, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   created,
	})
}

// GetOrders handles GET /api/orders with an optional ?email= filter.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, oc.env, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

// GetOrderByID handles GET /api/orders/:id.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, oc.env, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}
