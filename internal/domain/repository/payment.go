package repository

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// PaymentRepository describes persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	GetOpenByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error)
	// Review moves a pending payment to VERIFIED or REJECTED. A
	// verification also confirms the order inside the same transaction.
	Review(ctx context.Context, paymentID int64, proposed model.PaymentStatus, adminNote string) (*model.Payment, error)
}
