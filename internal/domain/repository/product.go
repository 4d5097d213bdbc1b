package repository

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]model.Product, error)
	// DecrementStock reduces stock atomically, failing when insufficient.
	DecrementStock(ctx context.Context, productID int64, quantity int) error
}
