// Package outboxrepo stores order events written by the unit of work until the relay
// job publishes them.
package outboxrepo

import (
	"time"

	"foodorders/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxDTO is one pending or sent event.
type OutboxDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type       string     `gorm:"type:varchar(64);not null"`
	MessageKey string     `gorm:"type:varchar(64);not null"`
	Payload    []byte     `gorm:"type:jsonb;not null"`
	OccurredAt time.Time  `gorm:"not null;index"`
	SentAt     *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m ports.OutboxMessage) OutboxDTO {
	return OutboxDTO{
		ID:         m.ID,
		Type:       m.Type,
		MessageKey: m.Key,
		Payload:    m.Payload,
		OccurredAt: m.OccurredAt,
	}
}

func toDomain(dto OutboxDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         dto.ID,
		Type:       dto.Type,
		Key:        dto.MessageKey,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}
}
