package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/polkiloo/storemart/internal/domain/model"
)

func TestNewEventEnvelope(t *testing.T) {
	data, _ := json.Marshal(map[string]string{"k": "v"})
	event := newEvent(EventTypeOrderCreated, 10, 3, data)

	if event.ID == "" {
		t.Fatal("expected generated event id")
	}
	if event.Type != EventTypeOrderCreated || event.OrderID != 10 || event.UserID != 3 {
		t.Fatalf("unexpected envelope %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	other := newEvent(EventTypeOrderCreated, 10, 3, data)
	if other.ID == event.ID {
		t.Fatal("expected unique event ids")
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	order := &model.Order{ID: 1, Status: model.OrderStatusPending}
	if err := p.OrderCreated(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.OrderStatusChanged(context.Background(), order, model.OrderStatusPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.PaymentVerified(context.Background(), &model.Payment{}, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
