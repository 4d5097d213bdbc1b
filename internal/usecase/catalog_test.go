package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/test"
)

func TestCatalogUseCaseCreateAssignsVendor(t *testing.T) {
	repo := &test.ProductRepositoryStub{}
	uc := NewCatalogUseCase(repo)

	product, err := uc.Create(context.Background(), pkgAuth.Session{UserID: 5, Role: model.RoleVendor}, ProductInput{
		Name:  " Gopher Mug ",
		Price: 12.50,
		Stock: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.VendorID != 5 {
		t.Fatalf("unexpected vendor %d", product.VendorID)
	}
	if product.Name != "Gopher Mug" {
		t.Fatalf("name not trimmed: %q", product.Name)
	}
}

func TestCatalogUseCaseCreateValidates(t *testing.T) {
	uc := NewCatalogUseCase(&test.ProductRepositoryStub{})
	session := pkgAuth.Session{UserID: 5, Role: model.RoleVendor}

	var fieldErr *FieldError
	if _, err := uc.Create(context.Background(), session, ProductInput{Name: "  "}); !errors.As(err, &fieldErr) {
		t.Fatalf("expected field error for empty name, got %v", err)
	}
	if _, err := uc.Create(context.Background(), session, ProductInput{Name: "Mug", Price: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for negative price, got %v", err)
	}
	if _, err := uc.Create(context.Background(), session, ProductInput{Name: "Mug", Stock: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for negative stock, got %v", err)
	}
}

func TestCatalogUseCaseGetHidesInactive(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, VendorID: 5, Name: "Mug", Active: false},
	}}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.Get(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleCustomer}, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for stranger, got %v", err)
	}
	if _, err := uc.Get(context.Background(), pkgAuth.Session{UserID: 5, Role: model.RoleVendor}, 1); err != nil {
		t.Fatalf("owner should see inactive product: %v", err)
	}
	if _, err := uc.Get(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleAdmin}, 1); err != nil {
		t.Fatalf("admin should see inactive product: %v", err)
	}
}

func TestCatalogUseCaseUpdateOwnership(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, VendorID: 5, Name: "Mug", Price: 10, Stock: 1, Active: true},
	}}
	uc := NewCatalogUseCase(repo)
	input := ProductInput{Name: "Mug v2", Price: 11, Stock: 2, Active: true}

	if _, err := uc.Update(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleVendor}, 1, input); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign vendor, got %v", err)
	}

	updated, err := uc.Update(context.Background(), pkgAuth.Session{UserID: 5, Role: model.RoleVendor}, 1, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Mug v2" || updated.Price != 11 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := uc.Update(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleAdmin}, 1, input); err != nil {
		t.Fatalf("admin update should pass: %v", err)
	}
}

func TestCatalogUseCaseListMine(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, VendorID: 5, Active: true},
		{ID: 2, VendorID: 5, Active: false},
		{ID: 3, VendorID: 9, Active: true},
	}}
	uc := NewCatalogUseCase(repo)

	mine, err := uc.ListMine(context.Background(), pkgAuth.Session{UserID: 5, Role: model.RoleVendor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 products, got %d", len(mine))
	}

	active, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(active))
	}
}
