package repository

import (
	"context"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// List returns all orders, optionally filtered by status.
	List(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	// UpdateStatus moves an order to the proposed status. The current
	// status is re-read and re-validated inside the transaction so a
	// concurrent update cannot slip an illegal transition through.
	UpdateStatus(ctx context.Context, orderID int64, proposed model.OrderStatus) (*model.Order, error)
	// SelectStalePending locks and returns PENDING orders created
	// before the cutoff that have no verified payment.
	SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
