package repository

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, description string) (*model.Category, error)
	Update(ctx context.Context, id int64, name, description string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Category, error)
}
