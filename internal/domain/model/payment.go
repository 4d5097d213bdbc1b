package model

import "time"

// PaymentStatus describes manual payment review lifecycle.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Valid reports whether the status belongs to the enum.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusVerified, PaymentStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the payment was already reviewed.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusVerified || s == PaymentStatusRejected
}

// Payment is a customer-submitted payment awaiting admin review.
type Payment struct {
	ID         int64
	OrderID    int64
	Amount     float64
	Status     PaymentStatus
	Reference  string
	ReceiptURL string
	AdminNote  string
	CreatedAt  time.Time
	ReviewedAt *time.Time
}
