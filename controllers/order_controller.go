package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// ===== Create (web/kiosk checkout) =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := oc.Service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrMenuItemNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, res)
}

// ===== List & Detail =====

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Service.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	snap, err := oc.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, snap)
}

// GET /orders/kitchen — full non-terminal set, the display resync source
func (oc *OrderController) Kitchen(c *gin.Context) {
	items, err := oc.Service.KitchenSet()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ===== Status =====

type UpdateStatusReq struct {
	OrderID uint `json:"orderId" binding:"required"`
	Status  int  `json:"status" binding:"required"`
}

// POST /orders/status — 200 with no body; the fan-out carries the payload
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	_, err := oc.Service.UpdateStatus(req.OrderID, entity.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrBlockedStatus):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.Status(http.StatusOK)
}

// ===== Payment placeholder =====

type PaymentCompleteReq struct {
	Result string `json:"result"`
}

// POST /orders/:id/payment-complete
func (oc *OrderController) PaymentComplete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	// body is optional; the payment page posts nothing on the happy path
	req := PaymentCompleteReq{Result: "success"}
	_ = c.ShouldBindJSON(&req)
	if req.Result == "" {
		req.Result = "success"
	}

	snap, err := oc.Service.CompletePayment(uint(id), req.Result)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": snap.ID, "status": snap.Status})
}
