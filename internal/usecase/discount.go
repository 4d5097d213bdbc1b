package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
	"github.com/polkiloo/storemart/internal/pkg/cache"
)

// DiscountInput is the writable surface of a discount code.
type DiscountInput struct {
	Code       string
	Name       string
	Percentage float64
	StartsAt   *time.Time
	EndsAt     *time.Time
	Active     bool
}

// Quote is the result of evaluating a code against a cart subtotal.
type Quote struct {
	Code       string
	Percentage float64
	Discount   float64
	Total      float64
}

// DiscountUseCase manages discount codes and cart-time evaluation.
type DiscountUseCase struct {
	discounts repository.DiscountRepository
	catalog   cache.DiscountCatalog
	now       func() time.Time
}

// NewDiscountUseCase constructs DiscountUseCase.
func NewDiscountUseCase(discounts repository.DiscountRepository, catalog cache.DiscountCatalog) *DiscountUseCase {
	return &DiscountUseCase{discounts: discounts, catalog: catalog, now: time.Now}
}

func validateDiscountInput(input DiscountInput) (*model.Discount, error) {
	code := rules.NormalizeCode(input.Code)
	if code == "" {
		return nil, &FieldError{Field: "code", Violations: rules.Violations{rules.ViolationRequired}}
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &FieldError{Field: "name", Violations: rules.Violations{rules.ViolationRequired}}
	}
	if err := rules.ValidateDiscountPercentage(input.Percentage); err != nil {
		return nil, err
	}
	if err := rules.ValidateDiscountWindow(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}
	return &model.Discount{
		Code:       code,
		Name:       strings.TrimSpace(input.Name),
		Percentage: input.Percentage,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		Active:     input.Active,
	}, nil
}

// Create validates and persists a new discount.
func (u *DiscountUseCase) Create(ctx context.Context, input DiscountInput) (*model.Discount, error) {
	discount, err := validateDiscountInput(input)
	if err != nil {
		return nil, err
	}
	created, err := u.discounts.Create(ctx, discount)
	if err != nil {
		return nil, err
	}
	u.catalog.Invalidate(ctx)
	return created, nil
}

// Update validates and persists changes to a discount.
func (u *DiscountUseCase) Update(ctx context.Context, id int64, input DiscountInput) (*model.Discount, error) {
	discount, err := validateDiscountInput(input)
	if err != nil {
		return nil, err
	}
	discount.ID = id
	updated, err := u.discounts.Update(ctx, discount)
	if err != nil {
		return nil, err
	}
	u.catalog.Invalidate(ctx)
	return updated, nil
}

// Toggle flips a discount's active flag.
func (u *DiscountUseCase) Toggle(ctx context.Context, id int64) (*model.Discount, error) {
	existing, err := u.discounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	toggled, err := u.discounts.SetActive(ctx, id, !existing.Active)
	if err != nil {
		return nil, err
	}
	u.catalog.Invalidate(ctx)
	return toggled, nil
}

// List returns every discount for the admin view.
func (u *DiscountUseCase) List(ctx context.Context) ([]model.Discount, error) {
	return u.discounts.List(ctx)
}

// Evaluate resolves a code against the active catalog and prices a
// cart subtotal with it.
func (u *DiscountUseCase) Evaluate(ctx context.Context, code string, subtotal float64) (*Quote, error) {
	if subtotal < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	catalog, err := u.activeCatalog(ctx)
	if err != nil {
		return nil, err
	}

	discount, err := rules.EvaluateDiscount(code, catalog, u.now())
	if err != nil {
		return nil, err
	}

	amount := rules.DiscountAmount(subtotal, discount.Percentage)
	return &Quote{
		Code:       discount.Code,
		Percentage: discount.Percentage,
		Discount:   amount,
		Total:      subtotal - amount,
	}, nil
}

// activeCatalog serves the cart-time catalog through the cache.
func (u *DiscountUseCase) activeCatalog(ctx context.Context) ([]model.Discount, error) {
	if catalog, ok := u.catalog.Get(ctx); ok {
		return catalog, nil
	}

	catalog, err := u.discounts.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	u.catalog.Set(ctx, catalog)
	return catalog, nil
}
