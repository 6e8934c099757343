package memory

import (
	"context"
	"time"

	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
)

// OutboxRepository exposes the store's outbox to the relay job.
type OutboxRepository struct {
	store *Store
}

func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{store: store}
}

func (r *OutboxRepository) Add(_ context.Context, messages ...ports.OutboxMessage) error {
	r.store.apply(nil, messages)
	return nil
}

func (r *OutboxRepository) FetchPending(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]ports.OutboxMessage, 0, limit)
	for _, rec := range r.store.outbox {
		if len(out) == limit {
			break
		}
		if rec.sentAt == nil {
			out = append(out, rec.message)
		}
	}
	return out, nil
}

func (r *OutboxRepository) MarkSent(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.outbox {
		if rec.message.ID == id {
			now := time.Now().UTC()
			rec.sentAt = &now
			return nil
		}
	}
	return errs.NewObjectNotFoundError("outbox message", id.String())
}
