package repository

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// DiscountRepository describes persistence operations for discount codes.
type DiscountRepository interface {
	Create(ctx context.Context, discount *model.Discount) (*model.Discount, error)
	Update(ctx context.Context, discount *model.Discount) (*model.Discount, error)
	GetByID(ctx context.Context, id int64) (*model.Discount, error)
	List(ctx context.Context) ([]model.Discount, error)
	// ListActive returns the catalog the cart-time evaluator runs against.
	ListActive(ctx context.Context) ([]model.Discount, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.Discount, error)
}
