package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/validation"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	for _, op := range []services.Operation{services.OperationConfirm, services.OperationSend, services.OperationDeliver} {
		cmd, err := commands.NewTransitionOrderCommand(kernel.MustID(1), op)

		require.NoError(t, err)
		assert.Equal(t, op, cmd.Operation())
	}

	for _, op := range []services.Operation{services.OperationCreate, services.OperationUpdate, services.OperationDestroy} {
		_, err := commands.NewTransitionOrderCommand(kernel.MustID(1), op)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid, op.String())
	}

	_, err := commands.NewTransitionOrderCommand(kernel.ID{}, services.OperationConfirm)
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	sentAt := createdAt.Add(2 * time.Minute)
	startedAt := createdAt.Add(time.Minute)

	tests := []struct {
		name      string
		op        services.Operation
		startedAt *time.Time
		sentAt    *time.Time
		want      order.Status
		event     order.EventType
	}{
		{"confirm", services.OperationConfirm, nil, nil, order.Started, order.EventOrderConfirmed},
		{"send", services.OperationSend, &startedAt, nil, order.Sent, order.EventOrderSent},
		{"deliver", services.OperationDeliver, &startedAt, &sentAt, order.Delivered, order.EventOrderDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()
			stored := storedOrder(t, 3, 5, tt.startedAt, tt.sentAt)

			mock.InOrder(
				f.uow.On("Begin", ctx).Return(nil).Once(),
				f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).Return(stored, nil).Once(),
				f.orders.On("Update", ctx, stored).Return(nil).Once(),
				f.uow.On("Commit", ctx).Return(nil).Once(),
				f.uow.On("Rollback", ctx).Return(nil).Once(),
			)

			cmd, err := commands.NewTransitionOrderCommand(kernel.MustID(3), tt.op)
			require.NoError(t, err)

			h := commands.NewTransitionOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
			got, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status())
			events := got.Events()
			require.Len(t, events, 1)
			assert.Equal(t, tt.event, events[0].Type)
			f.assertExpectations(t)
		})
	}
}

func TestTransitionOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).Return(storedOrder(t, 3, 5, nil, nil), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(kernel.MustID(3), services.OperationDeliver)
	require.NoError(t, err)

	h := commands.NewTransitionOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	got, err := h.Handle(ctx, cmd)

	assert.Nil(t, got)
	var rejection *services.Rejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, []services.Violation{{Field: "deliveredAt", Code: services.CodeNotStarted}}, rejection.Violations)
	f.assertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_MissingOrder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(8)).
		Return(nil, errs.NewObjectNotFoundError("order", int64(8))).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(kernel.MustID(8), services.OperationConfirm)
	require.NoError(t, err)

	h := commands.NewTransitionOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	_, err = h.Handle(ctx, cmd)

	var rejection *services.Rejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, []services.Violation{{Field: "id", Code: services.CodeOrderNotFound}}, rejection.Violations)
	f.assertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).Return(storedOrder(t, 3, 5, nil, nil), nil).Once()
	f.orders.On("Update", ctx, mock.Anything).Return(errors.New("update error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(kernel.MustID(3), services.OperationConfirm)
	require.NoError(t, err)

	h := commands.NewTransitionOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	f.assertExpectations(t)
}
