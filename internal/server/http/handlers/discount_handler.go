package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/usecase"
)

// DiscountHandler serves admin discount management and cart quotes.
type DiscountHandler struct {
	facade DiscountFacade
}

// NewDiscountHandler creates DiscountHandler instance.
func NewDiscountHandler(facade DiscountFacade) *DiscountHandler {
	return &DiscountHandler{facade: facade}
}

// List handles GET /api/admin/discounts.
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.facade.Discounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDiscountListResponse(discounts))
}

// Create handles POST /api/admin/discounts.
func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	discount, err := h.facade.CreateDiscount(c.Request.Context(), discountInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewDiscountResponse(discount))
}

// Update handles PUT /api/admin/discounts/:id.
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	discount, err := h.facade.UpdateDiscount(c.Request.Context(), id, discountInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDiscountResponse(discount))
}

// Toggle handles POST /api/admin/discounts/:id/toggle.
func (h *DiscountHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	discount, err := h.facade.ToggleDiscount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDiscountResponse(discount))
}

// Quote handles POST /api/cart/discount.
func (h *DiscountHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.QuoteDiscount(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Code:       quote.Code,
		Percentage: quote.Percentage,
		Discount:   quote.Discount,
		Total:      quote.Total,
	})
}

func discountInput(req dto.DiscountRequest) usecase.DiscountInput {
	return usecase.DiscountInput{
		Code:       req.Code,
		Name:       req.Name,
		Percentage: req.Percentage,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Active:     req.Active,
	}
}
