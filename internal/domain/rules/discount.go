package rules

import (
	"errors"
	"strings"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

var (
	ErrDiscountNotFound     = errors.New("discount code not found")
	ErrDiscountNotYetActive = errors.New("discount not yet active")
	ErrDiscountExpired      = errors.New("discount expired")
	ErrInvalidPercentage    = errors.New("percentage must be between 1 and 100")
	ErrInvalidWindow        = errors.New("discount window start is after end")
)

// NormalizeCode canonicalizes user input for matching against stored codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EvaluateDiscount resolves a user-entered code against the active
// catalog at the given moment. Matching is case-insensitive; inactive
// entries are invisible. The percentage of a persisted discount is
// trusted, bounds are enforced at write time.
func EvaluateDiscount(code string, catalog []model.Discount, now time.Time) (*model.Discount, error) {
	normalized := NormalizeCode(code)
	for i := range catalog {
		d := &catalog[i]
		if !d.Active || NormalizeCode(d.Code) != normalized {
			continue
		}
		if d.StartsAt != nil && now.Before(*d.StartsAt) {
			return nil, ErrDiscountNotYetActive
		}
		if d.EndsAt != nil && now.After(*d.EndsAt) {
			return nil, ErrDiscountExpired
		}
		return d, nil
	}
	return nil, ErrDiscountNotFound
}

// DiscountAmount computes the absolute reduction for a subtotal.
func DiscountAmount(subtotal, percentage float64) float64 {
	return subtotal * percentage / 100
}

// ValidateDiscountPercentage enforces the [1, 100] bound at create/edit time.
func ValidateDiscountPercentage(percentage float64) error {
	if percentage < 1 || percentage > 100 {
		return ErrInvalidPercentage
	}
	return nil
}

// ValidateDiscountWindow rejects windows that can never match.
func ValidateDiscountWindow(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && startsAt.After(*endsAt) {
		return ErrInvalidWindow
	}
	return nil
}
