package dto

import (
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// DiscountRequest describes an admin discount write.
type DiscountRequest struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Percentage float64    `json:"percentage"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	Active     bool       `json:"active"`
}

// DiscountResponse is the JSON view of a discount.
type DiscountResponse struct {
	ID         int64      `json:"id"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Percentage float64    `json:"percentage"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Active     bool       `json:"active"`
}

// QuoteRequest describes a cart-time discount evaluation.
type QuoteRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// QuoteResponse carries the priced result of a discount evaluation.
type QuoteResponse struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	Discount   float64 `json:"discount"`
	Total      float64 `json:"total"`
}

// NewDiscountResponse maps a discount onto its JSON view.
func NewDiscountResponse(discount *model.Discount) DiscountResponse {
	return DiscountResponse{
		ID:         discount.ID,
		Code:       discount.Code,
		Name:       discount.Name,
		Percentage: discount.Percentage,
		StartsAt:   discount.StartsAt,
		EndsAt:     discount.EndsAt,
		Active:     discount.Active,
	}
}

// NewDiscountListResponse maps a discount slice onto JSON views.
func NewDiscountListResponse(discounts []model.Discount) []DiscountResponse {
	out := make([]DiscountResponse, len(discounts))
	for i := range discounts {
		out[i] = NewDiscountResponse(&discounts[i])
	}
	return out
}
