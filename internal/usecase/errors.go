package usecase

import "github.com/polkiloo/storemart/internal/domain/rules"

// FieldError carries the failed constraints of a single submitted
// field. Violations stay data so handlers can render them verbatim.
type FieldError struct {
	Field      string
	Violations rules.Violations
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Violations.String()
}

// RecordError flags a structurally broken stored record. Operations on
// such records are refused rather than attempted.
type RecordError struct {
	Violations rules.Violations
}

func (e *RecordError) Error() string {
	return "invalid record: " + e.Violations.String()
}
