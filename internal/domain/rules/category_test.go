package rules

import (
	"strings"
	"testing"
)

func TestValidateCategoryName(t *testing.T) {
	cases := []struct {
		name     string
		expected Violations
	}{
		{"", Violations{ViolationRequired}},
		{"A", Violations{ViolationTooShort}},
		{"Valid Name-1", nil},
		{"Toys & Games", nil},
		{strings.Repeat("a", 101), Violations{ViolationTooLong}},
		{"Bad!Name", Violations{ViolationInvalidChars}},
		{"_", Violations{ViolationTooShort, ViolationInvalidChars}},
	}
	for _, tc := range cases {
		got := ValidateCategoryName(tc.name)
		if len(got) != len(tc.expected) {
			t.Fatalf("ValidateCategoryName(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
		for i := range tc.expected {
			if got[i] != tc.expected[i] {
				t.Fatalf("ValidateCategoryName(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		}
	}
}

func TestValidateCategoryDescription(t *testing.T) {
	if v := ValidateCategoryDescription(""); !v.OK() {
		t.Fatalf("empty description should be allowed, got %v", v)
	}
	if v := ValidateCategoryDescription(strings.Repeat("d", 500)); !v.OK() {
		t.Fatalf("500 chars should be allowed, got %v", v)
	}
	v := ValidateCategoryDescription(strings.Repeat("d", 501))
	if len(v) != 1 || v[0] != ViolationTooLong {
		t.Fatalf("expected [TOO_LONG], got %v", v)
	}
}
