package order

import (
	"time"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventType names a lifecycle fact about an order. The value doubles as the message
// type header on the order events topic.
type EventType string

const (
	EventOrderCreated   EventType = "order.created"
	EventOrderUpdated   EventType = "order.updated"
	EventOrderConfirmed EventType = "order.confirmed"
	EventOrderSent      EventType = "order.sent"
	EventOrderDelivered EventType = "order.delivered"
	EventOrderDeleted   EventType = "order.deleted"
)

// Event is recorded by the aggregate on every successful change and drained into the
// outbox by the unit of work in the same transaction as the change itself.
type Event struct {
	ID           uuid.UUID
	Type         EventType
	OrderID      kernel.ID
	RestaurantID kernel.ID
	Status       Status
	OccurredAt   time.Time
}

func (o *Order) record(eventType EventType, at time.Time) {
	o.events = append(o.events, Event{
		ID:           uuid.New(),
		Type:         eventType,
		OrderID:      o.id,
		RestaurantID: o.restaurantID,
		Status:       o.status,
		OccurredAt:   at,
	})
}

// Events returns the events recorded since the aggregate was loaded or last drained.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// PullEvents returns the recorded events and forgets them.
func (o *Order) PullEvents() []Event {
	out := o.events
	o.events = nil
	return out
}
