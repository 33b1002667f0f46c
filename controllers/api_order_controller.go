package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApiOrderController serves the external chat-bot channel. Responses are
// deliberately flat ({success, ...}) because the bot cannot render
// field-level validation; that shape is part of the bot contract.
type ApiOrderController struct {
	Service *services.OrderService
	Orders  *repository.OrderRepository
	Catalog *repository.CatalogRepository
}

func NewApiOrderController(
	s *services.OrderService,
	orders *repository.OrderRepository,
	catalog *repository.CatalogRepository,
) *ApiOrderController {
	return &ApiOrderController{Service: s, Orders: orders, Catalog: catalog}
}

// POST /api/orders/create-external
func (ac *ApiOrderController) CreateExternal(c *gin.Context) {
	var req services.ExternalOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	res, err := ac.Service.CreateExternal(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderId":     res.ID,
		"totalAmount": res.TotalAmount,
	})
}

// GET /api/orders/menu — compact menu for the bot prompt
func (ac *ApiOrderController) Menu(c *gin.Context) {
	entries, err := ac.Catalog.ListMenuEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/orders/:id/status — poll endpoint for "where is my order"
func (ac *ApiOrderController) OrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := ac.Orders.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          o.ID,
		"status":      o.Status,
		"totalAmount": o.TotalAmount,
		"createdAt":   o.CreatedAt,
		"updatedAt":   o.UpdatedAt,
	})
}
