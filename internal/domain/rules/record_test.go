package rules

import (
	"testing"

	"github.com/polkiloo/storemart/internal/domain/model"
)

func validOrder() *model.Order {
	return &model.Order{
		ID:     1,
		Status: model.OrderStatusPending,
		Items:  []model.OrderItem{{ProductID: 10, Name: "Mug", Price: 5, Quantity: 2, LineTotal: 10}},
		Total:  10,
	}
}

func TestValidateOrderPasses(t *testing.T) {
	if v := ValidateOrder(validOrder()); !v.OK() {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidateOrderNegativeTotalOnly(t *testing.T) {
	order := validOrder()
	order.Total = -5
	v := ValidateOrder(order)
	if len(v) != 1 || v[0] != ViolationInvalidTotal {
		t.Fatalf("expected exactly [INVALID_TOTAL], got %v", v)
	}
}

func TestValidateOrderZeroTotalAllowed(t *testing.T) {
	order := validOrder()
	order.Total = 0
	if v := ValidateOrder(order); !v.OK() {
		t.Fatalf("fully discounted order should be valid, got %v", v)
	}
}

func TestValidateOrderCollectsAllViolations(t *testing.T) {
	order := &model.Order{Total: -1}
	v := ValidateOrder(order)
	expected := Violations{ViolationMissingID, ViolationMissingStatus, ViolationInvalidTotal, ViolationEmptyItems}
	if len(v) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, v)
	}
	for i := range expected {
		if v[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, v)
		}
	}
}

func TestValidateOrderNil(t *testing.T) {
	if v := ValidateOrder(nil); v.OK() {
		t.Fatal("expected violations for nil order")
	}
}

func TestViolationsString(t *testing.T) {
	v := Violations{ViolationMissingID, ViolationEmptyItems}
	if got := v.String(); got != "MISSING_ID, EMPTY_ITEMS" {
		t.Fatalf("unexpected joined string %q", got)
	}
}
