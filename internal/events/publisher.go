// Package events publishes order lifecycle events to Kafka so other
// services (analytics, fulfillment) can react without polling.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// EventType represents the type of commerce event.
type EventType string

const (
	EventTypeOrderCreated       EventType = "order.created"
	EventTypeOrderStatusChanged EventType = "order.status_changed"
	EventTypePaymentVerified    EventType = "payment.verified"
)

// Event is the envelope written to the order topic.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OrderID   int64           `json:"order_id"`
	UserID    int64           `json:"user_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher emits commerce events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	OrderCreated(ctx context.Context, order *model.Order) error
	OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error
	PaymentVerified(ctx context.Context, payment *model.Payment, order *model.Order) error
}

// KafkaPublisher publishes events through a kafka-go writer.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// OrderCreated publishes an order creation event.
func (p *KafkaPublisher) OrderCreated(ctx context.Context, order *model.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return p.publish(ctx, newEvent(EventTypeOrderCreated, order.ID, order.UserID, data))
}

// OrderStatusChanged publishes a status transition event.
func (p *KafkaPublisher) OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error {
	payload := struct {
		PreviousStatus model.OrderStatus `json:"previous_status"`
		NewStatus      model.OrderStatus `json:"new_status"`
		Number         string            `json:"number"`
	}{previous, order.Status, order.Number}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.publish(ctx, newEvent(EventTypeOrderStatusChanged, order.ID, order.UserID, data))
}

// PaymentVerified publishes a successful payment review event.
func (p *KafkaPublisher) PaymentVerified(ctx context.Context, payment *model.Payment, order *model.Order) error {
	payload := struct {
		Reference string  `json:"reference"`
		Amount    float64 `json:"amount"`
		Number    string  `json:"number"`
	}{payment.Reference, payment.Amount, order.Number}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.publish(ctx, newEvent(EventTypePaymentVerified, order.ID, order.UserID, data))
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
	})
	if err != nil {
		p.logger.Error("publish event failed",
			slog.String("type", string(event.Type)),
			slog.Int64("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
	}
	return err
}

func newEvent(t EventType, orderID, userID int64, data json.RawMessage) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		OrderID:   orderID,
		UserID:    userID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NopPublisher is used when no Kafka brokers are configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, *model.Order) error { return nil }
func (NopPublisher) OrderStatusChanged(context.Context, *model.Order, model.OrderStatus) error {
	return nil
}
func (NopPublisher) PaymentVerified(context.Context, *model.Payment, *model.Order) error {
	return nil
}
