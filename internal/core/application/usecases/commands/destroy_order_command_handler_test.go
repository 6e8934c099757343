package commands_test

import (
	"errors"
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/validation"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDestroyOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	stored := storedOrder(t, 3, 5, nil, nil)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).Return(stored, nil).Once(),
		f.orders.On("Delete", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.IsDeleted() })).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewDestroyOrderCommand(kernel.MustID(3))
	require.NoError(t, err)

	h := commands.NewDestroyOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	require.NoError(t, h.Handle(ctx, cmd))
	f.catalog.AssertNotCalled(t, "GetProductsByIDs", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestDestroyOrderCommandHandler_Handle_StartedOrder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).
		Return(storedOrder(t, 3, 5, &createdAt, nil), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDestroyOrderCommand(kernel.MustID(3))
	require.NoError(t, err)

	h := commands.NewDestroyOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	err = h.Handle(ctx, cmd)

	var rejection *services.Rejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, []services.Violation{{Field: "id", Code: services.CodeAlreadyStarted}}, rejection.Violations)
	f.assertExpectations(t)
}

func TestDestroyOrderCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("GetForUpdate", mock.Anything, kernel.MustID(3)).Return(storedOrder(t, 3, 5, nil, nil), nil).Once()
	f.orders.On("Delete", ctx, mock.Anything).Return(errors.New("delete error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDestroyOrderCommand(kernel.MustID(3))
	require.NoError(t, err)

	h := commands.NewDestroyOrderCommandHandler(f.factory, validation.NewValidator(nil, nil))
	require.EqualError(t, h.Handle(ctx, cmd), "delete error")
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestDestroyOrderCommand_NotConstructed(t *testing.T) {
	h := commands.NewDestroyOrderCommandHandler(new(MockUoWFactory), validation.NewValidator(nil, nil))

	require.ErrorIs(t, h.Handle(t.Context(), commands.DestroyOrderCommand{}), commands.ErrDestroyOrderCommandIsNotConstructed)
}
