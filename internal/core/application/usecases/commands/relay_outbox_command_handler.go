package commands

import (
	"context"
	"fmt"

	"foodorders/internal/core/ports"
)

// PublishObserver is told about every publish attempt.
type PublishObserver interface {
	ObservePublish(eventType string, err error)
}

type noopPublishObserver struct{}

func (noopPublishObserver) ObservePublish(string, error) {}

// RelayOutboxCommandHandler moves pending outbox messages to the event publisher.
// Messages are published oldest first; the first failure ends the batch so that the
// events of one order are never published out of order.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	observer  PublishObserver
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	observer PublishObserver,
) RelayOutboxCommandHandler {
	if observer == nil {
		observer = noopPublishObserver{}
	}
	return RelayOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
		observer:  observer,
	}
}

// Handle returns how many messages were published.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.outbox.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	for i, message := range pending {
		err := h.publisher.Publish(ctx, message)
		h.observer.ObservePublish(message.Type, err)
		if err != nil {
			return i, fmt.Errorf("publish %s %s: %w", message.Type, message.ID, err)
		}

		if err := h.outbox.MarkSent(ctx, message.ID); err != nil {
			return i, fmt.Errorf("mark %s sent: %w", message.ID, err)
		}
	}

	return len(pending), nil
}
