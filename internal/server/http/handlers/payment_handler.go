package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/usecase"
)

// PaymentHandler serves payment submission and the admin review queue.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler creates PaymentHandler instance.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Submit handles POST /api/orders/:id/payment.
func (h *PaymentHandler) Submit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.SubmitPayment(c.Request.Context(), CurrentSession(c), id, usecase.PaymentInput{
		Amount:     req.Amount,
		ReceiptURL: req.ReceiptURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPaymentResponse(payment))
}

// ListPending handles GET /api/admin/payments.
func (h *PaymentHandler) ListPending(c *gin.Context) {
	payments, err := h.facade.PendingPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentListResponse(payments))
}

// Verify handles POST /api/admin/payments/:id/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	h.review(c, h.facade.VerifyPayment)
}

// Reject handles POST /api/admin/payments/:id/reject.
func (h *PaymentHandler) Reject(c *gin.Context) {
	h.review(c, h.facade.RejectPayment)
}

func (h *PaymentHandler) review(c *gin.Context, reviewFn func(ctx context.Context, id int64, note string) (*model.Payment, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := reviewFn(c.Request.Context(), id, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}
