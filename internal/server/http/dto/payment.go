package dto

import (
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// PaymentRequest describes a customer payment submission.
type PaymentRequest struct {
	Amount     float64 `json:"amount"`
	ReceiptURL string  `json:"receipt_url"`
}

// ReviewRequest carries the admin note of a payment review.
type ReviewRequest struct {
	Note string `json:"note"`
}

// PaymentResponse is the JSON view of a payment.
type PaymentResponse struct {
	ID         int64      `json:"id"`
	OrderID    int64      `json:"order_id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	Reference  string     `json:"reference"`
	ReceiptURL string     `json:"receipt_url,omitempty"`
	AdminNote  string     `json:"admin_note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

// NewPaymentResponse maps a payment onto its JSON view.
func NewPaymentResponse(payment *model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID,
		OrderID:    payment.OrderID,
		Amount:     payment.Amount,
		Status:     string(payment.Status),
		Reference:  payment.Reference,
		ReceiptURL: payment.ReceiptURL,
		AdminNote:  payment.AdminNote,
		CreatedAt:  payment.CreatedAt,
		ReviewedAt: payment.ReviewedAt,
	}
}

// NewPaymentListResponse maps a payment slice onto JSON views.
func NewPaymentListResponse(payments []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = NewPaymentResponse(&payments[i])
	}
	return out
}
