package rules

import (
	"strings"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// Violation names a single structural or field constraint failure.
// Violations are data, not errors: callers gate actions and render
// messages, nothing is thrown.
type Violation string

const (
	ViolationMissingID     Violation = "MISSING_ID"
	ViolationMissingStatus Violation = "MISSING_STATUS"
	ViolationInvalidTotal  Violation = "INVALID_TOTAL"
	ViolationEmptyItems    Violation = "EMPTY_ITEMS"

	ViolationRequired     Violation = "REQUIRED"
	ViolationTooShort     Violation = "TOO_SHORT"
	ViolationTooLong      Violation = "TOO_LONG"
	ViolationInvalidChars Violation = "INVALID_CHARS"
)

// Violations collects every failed check, in check order.
type Violations []Violation

// OK reports whether no constraint failed.
func (v Violations) OK() bool { return len(v) == 0 }

// String joins violations for display.
func (v Violations) String() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = string(violation)
	}
	return strings.Join(parts, ", ")
}

// ValidateOrder flags structurally broken order records so callers can
// disable unsafe actions instead of acting on them. All violations are
// reported, not just the first. A zero total is legal (fully discounted
// order); a negative one is not.
func ValidateOrder(order *model.Order) Violations {
	var out Violations
	if order == nil {
		return Violations{ViolationMissingID, ViolationMissingStatus, ViolationEmptyItems}
	}
	if order.ID == 0 {
		out = append(out, ViolationMissingID)
	}
	if order.Status == "" {
		out = append(out, ViolationMissingStatus)
	}
	if order.Total < 0 {
		out = append(out, ViolationInvalidTotal)
	}
	if len(order.Items) == 0 {
		out = append(out, ViolationEmptyItems)
	}
	return out
}
