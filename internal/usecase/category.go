package usecase

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
)

// CategoryUseCase manages the category taxonomy.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase constructs CategoryUseCase.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

func validateCategoryFields(name, description string) error {
	if v := rules.ValidateCategoryName(name); !v.OK() {
		return &FieldError{Field: "name", Violations: v}
	}
	if v := rules.ValidateCategoryDescription(description); !v.OK() {
		return &FieldError{Field: "description", Violations: v}
	}
	return nil
}

// Create validates fields and persists a new category.
func (u *CategoryUseCase) Create(ctx context.Context, name, description string) (*model.Category, error) {
	if err := validateCategoryFields(name, description); err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, name, description)
}

// Update validates fields and persists changes to a category.
func (u *CategoryUseCase) Update(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if err := validateCategoryFields(name, description); err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, id, name, description)
}

// Delete removes a category.
func (u *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// List returns all categories sorted by name.
func (u *CategoryUseCase) List(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}
