package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status belongs to the enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions exist.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is a priced line of an order. LineTotal is fixed at checkout.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Order describes a placed order with its pricing breakdown.
type Order struct {
	ID              int64
	Number          string
	UserID          int64
	UserEmail       string
	Status          OrderStatus
	Items           []OrderItem
	Subtotal        float64
	DiscountCode    string
	DiscountAmount  float64
	Total           float64
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
