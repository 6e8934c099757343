package outboxrepo

import (
	"context"
	"time"

	"foodorders/internal/adapters/out/postgres/dberr"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, fromDomain(m))
	}

	return dberr.Wrap("add outbox messages", r.db.WithContext(ctx).Create(&dtos).Error)
}

// FetchPending returns up to limit unsent messages, oldest first.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("fetch pending outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toDomain(dto))
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id = ?", id).
		Update("sent_at", r.now())
	if result.Error != nil {
		return dberr.Wrap("mark outbox message sent", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}
	return nil
}
