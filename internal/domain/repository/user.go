package repository

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
