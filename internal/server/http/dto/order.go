package dto

import (
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// CheckoutItem is one requested cart line.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest describes a checkout payload.
type CheckoutRequest struct {
	Items           []CheckoutItem `json:"items"`
	DiscountCode    string         `json:"discount_code"`
	ShippingAddress string         `json:"shipping_address"`
}

// StatusRequest carries a proposed order status.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is the JSON view of a priced order line.
type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// OrderResponse is the JSON view of an order.
type OrderResponse struct {
	ID              int64               `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        float64             `json:"subtotal"`
	DiscountCode    string              `json:"discount_code,omitempty"`
	DiscountAmount  float64             `json:"discount_amount,omitempty"`
	Total           float64             `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	CreatedAt       time.Time           `json:"created_at"`
}

// TransitionsResponse lists the legal next statuses of an order.
type TransitionsResponse struct {
	Status      string   `json:"status"`
	Transitions []string `json:"transitions"`
}

// NewOrderResponse maps an order onto its JSON view.
func NewOrderResponse(order *model.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		}
	}
	return OrderResponse{
		ID:              order.ID,
		Number:          order.Number,
		Status:          string(order.Status),
		Items:           items,
		Subtotal:        order.Subtotal,
		DiscountCode:    order.DiscountCode,
		DiscountAmount:  order.DiscountAmount,
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}

// NewOrderListResponse maps an order slice onto JSON views.
func NewOrderListResponse(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = NewOrderResponse(&orders[i])
	}
	return out
}
