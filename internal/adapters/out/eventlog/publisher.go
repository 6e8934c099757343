// Package eventlog is the event publisher used when no broker is configured: every
// outbox message is written to the structured log.
package eventlog

import (
	"context"
	"log/slog"

	"foodorders/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "eventlog")}
}

func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "order event",
		slog.String("id", message.ID.String()),
		slog.String("type", message.Type),
		slog.String("key", message.Key),
		slog.Time("occurred_at", message.OccurredAt),
		slog.String("payload", string(message.Payload)),
	)
	return nil
}
