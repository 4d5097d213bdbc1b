package test

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// PublishedEvent records one publisher invocation for assertions.
type PublishedEvent struct {
	Type     string
	OrderID  int64
	Previous model.OrderStatus
}

// PublisherStub records events instead of writing to Kafka.
type PublisherStub struct {
	Events []PublishedEvent
	Err    error
}

// OrderCreated records the event or returns the configured error.
func (s *PublisherStub) OrderCreated(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.Events = append(s.Events, PublishedEvent{Type: "order.created", OrderID: order.ID})
	return nil
}

// OrderStatusChanged records the event or returns the configured error.
func (s *PublisherStub) OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.Events = append(s.Events, PublishedEvent{Type: "order.status_changed", OrderID: order.ID, Previous: previous})
	return nil
}

// PaymentVerified records the event or returns the configured error.
func (s *PublisherStub) PaymentVerified(ctx context.Context, payment *model.Payment, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.Events = append(s.Events, PublishedEvent{Type: "payment.verified", OrderID: order.ID})
	return nil
}

// Notification records one notifier invocation for assertions.
type Notification struct {
	OrderID  int64
	Previous model.OrderStatus
	Status   model.OrderStatus
}

// NotifierStub records notifications instead of calling the service.
type NotifierStub struct {
	Sent []Notification
	Err  error
}

// OrderStatusChanged records the notification or returns the configured error.
func (s *NotifierStub) OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, Notification{OrderID: order.ID, Previous: previous, Status: order.Status})
	return nil
}

// CatalogStub is an in-memory discount catalog cache.
type CatalogStub struct {
	Catalog     []model.Discount
	Present     bool
	SetCalls    int
	Invalidated int
}

// Get returns the configured catalog when marked present.
func (s *CatalogStub) Get(ctx context.Context) ([]model.Discount, bool) {
	if !s.Present {
		return nil, false
	}
	return s.Catalog, true
}

// Set stores the catalog and marks it present.
func (s *CatalogStub) Set(ctx context.Context, catalog []model.Discount) {
	s.Catalog = catalog
	s.Present = true
	s.SetCalls++
}

// Invalidate drops the catalog.
func (s *CatalogStub) Invalidate(ctx context.Context) {
	s.Catalog = nil
	s.Present = false
	s.Invalidated++
}
