package rules

import (
	"testing"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

func discountCatalog(entries ...model.Discount) []model.Discount {
	return entries
}

func TestEvaluateDiscountMatchesIgnoringCaseAndWhitespace(t *testing.T) {
	now := time.Now()
	catalog := discountCatalog(model.Discount{Code: "SAVE10", Active: true, Percentage: 10})

	for _, input := range []string{"SAVE10", "save10", "  Save10  "} {
		d, err := EvaluateDiscount(input, catalog, now)
		if err != nil {
			t.Fatalf("expected %q to match, got %v", input, err)
		}
		if d.Percentage != 10 {
			t.Fatalf("unexpected percentage %v", d.Percentage)
		}
	}
}

func TestEvaluateDiscountNotFound(t *testing.T) {
	now := time.Now()
	catalog := discountCatalog(
		model.Discount{Code: "SAVE10", Active: false, Percentage: 10},
		model.Discount{Code: "OTHER", Active: true, Percentage: 5},
	)

	if _, err := EvaluateDiscount("SAVE10", catalog, now); err != ErrDiscountNotFound {
		t.Fatalf("inactive code should be invisible, got %v", err)
	}
	if _, err := EvaluateDiscount("NOPE", catalog, now); err != ErrDiscountNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEvaluateDiscountNotYetActive(t *testing.T) {
	now := time.Now()
	starts := now.Add(24 * time.Hour)
	catalog := discountCatalog(model.Discount{Code: "SAVE10", Active: true, Percentage: 10, StartsAt: &starts})

	if _, err := EvaluateDiscount("SAVE10", catalog, now); err != ErrDiscountNotYetActive {
		t.Fatalf("expected not yet active, got %v", err)
	}
}

func TestEvaluateDiscountExpired(t *testing.T) {
	now := time.Now()
	ends := now.Add(-24 * time.Hour)
	catalog := discountCatalog(model.Discount{Code: "SAVE10", Active: true, Percentage: 10, EndsAt: &ends})

	if _, err := EvaluateDiscount("SAVE10", catalog, now); err != ErrDiscountExpired {
		t.Fatalf("expected expired, got %v", err)
	}
}

func TestEvaluateDiscountInsideWindow(t *testing.T) {
	now := time.Now()
	starts := now.Add(-time.Hour)
	ends := now.Add(time.Hour)
	catalog := discountCatalog(model.Discount{Code: "SAVE10", Active: true, Percentage: 10, StartsAt: &starts, EndsAt: &ends})

	if _, err := EvaluateDiscount("SAVE10", catalog, now); err != nil {
		t.Fatalf("expected window to match, got %v", err)
	}
}

func TestDiscountAmount(t *testing.T) {
	if got := DiscountAmount(200, 10); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := DiscountAmount(0, 50); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestValidateDiscountPercentage(t *testing.T) {
	for _, pct := range []float64{1, 50, 100} {
		if err := ValidateDiscountPercentage(pct); err != nil {
			t.Fatalf("expected %v to be valid, got %v", pct, err)
		}
	}
	for _, pct := range []float64{0, 0.5, 101, -3} {
		if err := ValidateDiscountPercentage(pct); err != ErrInvalidPercentage {
			t.Fatalf("expected %v to be rejected, got %v", pct, err)
		}
	}
}

func TestValidateDiscountWindow(t *testing.T) {
	a := time.Now()
	b := a.Add(time.Hour)
	if err := ValidateDiscountWindow(&a, &b); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}
	if err := ValidateDiscountWindow(&b, &a); err != ErrInvalidWindow {
		t.Fatalf("expected invalid window, got %v", err)
	}
	if err := ValidateDiscountWindow(nil, nil); err != nil {
		t.Fatalf("open window should be valid, got %v", err)
	}
}
