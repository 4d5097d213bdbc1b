package rules

import "github.com/polkiloo/storemart/internal/domain/model"

// paymentTransitions encodes the single-review lifecycle: a pending
// payment is verified or rejected exactly once.
var paymentTransitions = map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentStatusPending:  {model.PaymentStatusVerified, model.PaymentStatusRejected},
	model.PaymentStatusVerified: {},
	model.PaymentStatusRejected: {},
}

// ValidatePaymentTransition checks a payment review action with the
// same error taxonomy as order transitions.
func ValidatePaymentTransition(current, proposed model.PaymentStatus) error {
	if !current.Valid() || !proposed.Valid() {
		return ErrInvalidStatus
	}
	if current == proposed {
		return ErrNoOpTransition
	}
	for _, s := range paymentTransitions[current] {
		if s == proposed {
			return nil
		}
	}
	return ErrIllegalTransition
}
