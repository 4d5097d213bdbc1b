package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/rules"
	"github.com/polkiloo/storemart/internal/test"
)

func TestDiscountUseCaseCreateNormalizesAndInvalidates(t *testing.T) {
	repo := &test.DiscountRepositoryStub{}
	catalog := &test.CatalogStub{Present: true}
	uc := NewDiscountUseCase(repo, catalog)

	discount, err := uc.Create(context.Background(), DiscountInput{
		Code:       "  summer10 ",
		Name:       "Summer sale",
		Percentage: 10,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount.Code != "SUMMER10" {
		t.Fatalf("code not normalized: %q", discount.Code)
	}
	if catalog.Invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", catalog.Invalidated)
	}
}

func TestDiscountUseCaseCreateValidates(t *testing.T) {
	uc := NewDiscountUseCase(&test.DiscountRepositoryStub{}, &test.CatalogStub{})
	base := DiscountInput{Code: "SALE", Name: "Sale", Percentage: 10}

	empty := base
	empty.Code = "   "
	var fieldErr *FieldError
	if _, err := uc.Create(context.Background(), empty); !errors.As(err, &fieldErr) || fieldErr.Field != "code" {
		t.Fatalf("expected code field error, got %v", err)
	}

	for _, pct := range []float64{0, 0.5, 101, -3} {
		input := base
		input.Percentage = pct
		if _, err := uc.Create(context.Background(), input); !errors.Is(err, rules.ErrInvalidPercentage) {
			t.Fatalf("percentage %v: expected invalid percentage, got %v", pct, err)
		}
	}

	start := time.Now()
	end := start.Add(-time.Hour)
	window := base
	window.StartsAt = &start
	window.EndsAt = &end
	if _, err := uc.Create(context.Background(), window); !errors.Is(err, rules.ErrInvalidWindow) {
		t.Fatalf("expected invalid window, got %v", err)
	}
}

func TestDiscountUseCaseToggle(t *testing.T) {
	repo := &test.DiscountRepositoryStub{Discounts: []model.Discount{
		{ID: 1, Code: "SALE", Name: "Sale", Percentage: 10, Active: true},
	}}
	catalog := &test.CatalogStub{Present: true}
	uc := NewDiscountUseCase(repo, catalog)

	toggled, err := uc.Toggle(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Active {
		t.Fatal("expected discount to be deactivated")
	}
	if catalog.Invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", catalog.Invalidated)
	}
}

func TestDiscountUseCaseEvaluateFromCache(t *testing.T) {
	repo := &test.DiscountRepositoryStub{
		ListActiveFn: func(context.Context) ([]model.Discount, error) {
			t.Fatal("repository should not be hit on cache hit")
			return nil, nil
		},
	}
	catalog := &test.CatalogStub{Present: true, Catalog: []model.Discount{
		{ID: 1, Code: "SALE", Percentage: 25, Active: true},
	}}
	uc := NewDiscountUseCase(repo, catalog)

	quote, err := uc.Evaluate(context.Background(), " sale ", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Discount != 50 || quote.Total != 150 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestDiscountUseCaseEvaluateFillsCache(t *testing.T) {
	repo := &test.DiscountRepositoryStub{Discounts: []model.Discount{
		{ID: 1, Code: "SALE", Percentage: 10, Active: true},
	}}
	catalog := &test.CatalogStub{}
	uc := NewDiscountUseCase(repo, catalog)

	if _, err := uc.Evaluate(context.Background(), "SALE", 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.SetCalls != 1 {
		t.Fatalf("expected catalog to be cached, got %d sets", catalog.SetCalls)
	}
}

func TestDiscountUseCaseEvaluateWindow(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	repo := &test.DiscountRepositoryStub{Discounts: []model.Discount{
		{ID: 1, Code: "SOON", Percentage: 10, StartsAt: &future, Active: true},
		{ID: 2, Code: "GONE", Percentage: 10, EndsAt: &past, Active: true},
	}}
	uc := NewDiscountUseCase(repo, &test.CatalogStub{})

	if _, err := uc.Evaluate(context.Background(), "SOON", 100); !errors.Is(err, rules.ErrDiscountNotYetActive) {
		t.Fatalf("expected not yet active, got %v", err)
	}
	if _, err := uc.Evaluate(context.Background(), "GONE", 100); !errors.Is(err, rules.ErrDiscountExpired) {
		t.Fatalf("expected expired, got %v", err)
	}
	if _, err := uc.Evaluate(context.Background(), "NOPE", 100); !errors.Is(err, rules.ErrDiscountNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
