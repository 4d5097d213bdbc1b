package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
)

// ProductInput is the writable surface of a catalog entry.
type ProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Active      bool
}

// CatalogUseCase manages vendor products.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &FieldError{Field: "name", Violations: rules.Violations{rules.ViolationRequired}}
	}
	if input.Price < 0 || input.Stock < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

// ListActive returns the storefront catalog.
func (u *CatalogUseCase) ListActive(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// Get returns a catalog entry visible to the caller: active products
// for everyone, inactive ones only for their vendor or an admin.
func (u *CatalogUseCase) Get(ctx context.Context, session pkgAuth.Session, id int64) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active && session.Role != model.RoleAdmin && session.UserID != product.VendorID {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}

// ListMine returns the caller's own products, active or not.
func (u *CatalogUseCase) ListMine(ctx context.Context, session pkgAuth.Session) ([]model.Product, error) {
	return u.products.ListByVendor(ctx, session.UserID)
}

// Create adds a product owned by the calling vendor.
func (u *CatalogUseCase) Create(ctx context.Context, session pkgAuth.Session, input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product := &model.Product{
		VendorID:    session.UserID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Active:      input.Active,
	}
	return u.products.Create(ctx, product)
}

// Update modifies a product. Vendors may only touch their own entries.
func (u *CatalogUseCase) Update(ctx context.Context, session pkgAuth.Session, id int64, input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Role != model.RoleAdmin && existing.VendorID != session.UserID {
		return nil, domainErrors.ErrForbidden
	}

	updated := *existing
	updated.CategoryID = input.CategoryID
	updated.Name = strings.TrimSpace(input.Name)
	updated.Description = input.Description
	updated.Price = input.Price
	updated.Stock = input.Stock
	updated.Active = input.Active
	return u.products.Update(ctx, &updated)
}
