package ports_test

import (
	"testing"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxMessage(t *testing.T) {
	id := uuid.MustParse("7b0e1f5c-3d7a-4c0e-9f49-2a3b8f1f6d10")
	occurredAt := time.Date(2024, 1, 1, 14, 0, 0, 0, time.FixedZone("CET", 3600))

	message, err := ports.NewOutboxMessage(order.Event{
		ID:           id,
		Type:         order.EventOrderConfirmed,
		OrderID:      kernel.MustID(42),
		RestaurantID: kernel.MustID(5),
		Status:       order.Started,
		OccurredAt:   occurredAt,
	})

	require.NoError(t, err)
	assert.Equal(t, id, message.ID)
	assert.Equal(t, "order.confirmed", message.Type)
	assert.Equal(t, "42", message.Key)
	assert.Equal(t, occurredAt, message.OccurredAt)
	assert.JSONEq(t, `{
		"eventId":"7b0e1f5c-3d7a-4c0e-9f49-2a3b8f1f6d10",
		"type":"order.confirmed",
		"orderId":42,
		"restaurantId":5,
		"status":"in process",
		"occurredAt":"2024-01-01T13:00:00Z"
	}`, string(message.Payload))
}
