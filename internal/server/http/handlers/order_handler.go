package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/usecase"
)

// OrderHandler serves checkout and the order lifecycle.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]usecase.CartLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = usecase.CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentSession(c), usecase.CheckoutInput{
		Lines:           lines,
		DiscountCode:    req.DiscountCode,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), CurrentSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Transitions handles GET /api/orders/:id/transitions.
func (h *OrderHandler) Transitions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), CurrentSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	next, err := h.facade.OrderTransitions(c.Request.Context(), CurrentSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	transitions := make([]string, len(next))
	for i, status := range next {
		transitions[i] = string(status)
	}
	c.JSON(http.StatusOK, dto.TransitionsResponse{Status: string(order.Status), Transitions: transitions})
}

// AdminList handles GET /api/admin/orders.
func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context(), model.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// UpdateStatus handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
