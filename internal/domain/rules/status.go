// Package rules holds the pure validation rules shared by use cases,
// handlers, and the background reaper: the order status transition
// table, structural record checks, discount code evaluation, and
// category field constraints. Nothing here performs I/O.
package rules

import (
	"errors"

	"github.com/polkiloo/storemart/internal/domain/model"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNoOpTransition    = errors.New("status unchanged")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// orderTransitions maps each status to the statuses it may move to.
// DELIVERED and CANCELLED are terminal.
var orderTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed:  {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusShipped},
	model.OrderStatusShipped:    {model.OrderStatusDelivered},
	model.OrderStatusDelivered:  {},
	model.OrderStatusCancelled:  {},
}

// NextStatuses returns the statuses an order may legally move to next.
// Unknown and terminal statuses yield an empty slice.
func NextStatuses(current model.OrderStatus) []model.OrderStatus {
	next := orderTransitions[current]
	out := make([]model.OrderStatus, len(next))
	copy(out, next)
	return out
}

// ValidateTransition checks a proposed order status change against the
// transition table. The checks are ordered: unknown enum values first,
// then no-op, then table membership.
func ValidateTransition(current, proposed model.OrderStatus) error {
	if !current.Valid() || !proposed.Valid() {
		return ErrInvalidStatus
	}
	if current == proposed {
		return ErrNoOpTransition
	}
	for _, s := range orderTransitions[current] {
		if s == proposed {
			return nil
		}
	}
	return ErrIllegalTransition
}

// CanTransition reports whether the change would pass ValidateTransition.
func CanTransition(current, proposed model.OrderStatus) bool {
	return ValidateTransition(current, proposed) == nil
}
