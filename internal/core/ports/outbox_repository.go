package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OutboxMessage is an order event waiting to be published.
type OutboxMessage struct {
	ID         uuid.UUID
	Type       string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

type outboxPayload struct {
	EventID      string    `json:"eventId"`
	Type         string    `json:"type"`
	OrderID      int64     `json:"orderId"`
	RestaurantID int64     `json:"restaurantId"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewOutboxMessage serializes an order event. The message key is the order id so that
// events of one order stay ordered within a partition.
func NewOutboxMessage(event order.Event) (OutboxMessage, error) {
	payload, err := json.Marshal(outboxPayload{
		EventID:      event.ID.String(),
		Type:         string(event.Type),
		OrderID:      event.OrderID.Value(),
		RestaurantID: event.RestaurantID.Value(),
		Status:       event.Status.String(),
		OccurredAt:   event.OccurredAt.UTC(),
	})
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	return OutboxMessage{
		ID:         event.ID,
		Type:       string(event.Type),
		Key:        event.OrderID.String(),
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}, nil
}

// OutboxRepository stores order events until the relay job publishes them.
type OutboxRepository interface {
	// Add stores messages. Called by the unit of work inside its transaction.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// FetchPending returns up to limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent flags a message as published.
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// EventPublisher delivers an outbox message to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
