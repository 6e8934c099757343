package memory_test

import (
	"context"
	"testing"
	"time"

	"foodorders/internal/adapters/out/memory"
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()

	r, err := catalog.NewRestaurant(kernel.MustID(5), "Pizzeria")
	require.NoError(t, err)
	require.NoError(t, store.AddRestaurant(r))

	p, err := catalog.NewProduct(kernel.MustID(1), kernel.MustID(5), "Margherita", true)
	require.NoError(t, err)
	require.NoError(t, store.AddProduct(p))
	return store
}

func newOrder(t *testing.T, uow ports.UnitOfWork, at time.Time) *order.Order {
	t.Helper()
	ctx := context.Background()

	id, err := uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.MustID(1), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(id, kernel.MustID(5), []order.Line{line}, "Main st. 1", at)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitAppliesChangesAndEvents(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	o := newOrder(t, uow, createdAt)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	staged, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), staged.ID())

	require.NoError(t, uow.Commit(ctx))

	reader := factory.Create()
	got, err := reader.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, "Main st. 1", got.Address())
	assert.Equal(t, order.Pending, got.Status())
	assert.Empty(t, got.Events())

	pending, err := memory.NewOutboxRepository(store).FetchPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, string(order.EventOrderCreated), pending[0].Type)
	assert.Equal(t, o.ID().String(), pending[0].Key)
}

func TestUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	o := newOrder(t, uow, createdAt)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	pending, err := memory.NewOutboxRepository(store).FetchPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUnitOfWork_RollbackAfterCommit(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWorkFactory(seededStore(t)).Create()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_WritesNeedTransaction(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWorkFactory(seededStore(t)).Create()

	o := newOrder(t, uow, createdAt)

	require.ErrorIs(t, uow.OrderRepository().Add(ctx, o), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_Serialized(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(seededStore(t))

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	timeout, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := factory.Create().Begin(timeout)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)

	require.NoError(t, first.Rollback(ctx))

	second := factory.Create()
	require.NoError(t, second.Begin(ctx))
	require.NoError(t, second.Rollback(ctx))
}

func TestOrderRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	o := newOrder(t, uow, createdAt)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, locked.Confirm(createdAt.Add(time.Minute)))
	require.NoError(t, uow.OrderRepository().Update(ctx, locked))
	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Started, got.Status())

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Delete(ctx, got))
	_, err = uow.OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, uow.Commit(ctx))

	missing := newOrder(t, factory.Create(), createdAt)
	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.ErrorIs(t, uow.OrderRepository().Update(ctx, missing), errs.ErrObjectNotFound)
	require.NoError(t, uow.Rollback(ctx))
}

func TestOrderRepository_List(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(seededStore(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	older := newOrder(t, uow, createdAt)
	newer := newOrder(t, uow, createdAt.Add(time.Hour))
	require.NoError(t, newer.Confirm(createdAt.Add(2*time.Hour)))
	require.NoError(t, uow.OrderRepository().Add(ctx, older))
	require.NoError(t, uow.OrderRepository().Add(ctx, newer))
	require.NoError(t, uow.Commit(ctx))

	repo := factory.Create().OrderRepository()

	all, err := repo.List(ctx, ports.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID(), all[0].ID())
	assert.Equal(t, older.ID(), all[1].ID())

	pending := order.Pending
	onlyPending, err := repo.List(ctx, ports.OrderFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, older.ID(), onlyPending[0].ID())

	other := kernel.MustID(6)
	none, err := repo.List(ctx, ports.OrderFilter{RestaurantID: &other})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnitOfWorkFactory(seededStore(t)).Create().CatalogRepository()

	r, err := repo.GetRestaurant(ctx, kernel.MustID(5))
	require.NoError(t, err)
	assert.Equal(t, "Pizzeria", r.Name())

	_, err = repo.GetRestaurant(ctx, kernel.MustID(6))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	products, err := repo.GetProductsByIDs(ctx, []kernel.ID{kernel.MustID(1), kernel.MustID(2)})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, kernel.MustID(1), products[0].ID())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	outbox := memory.NewOutboxRepository(store)

	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(5), []order.Line{mustLine(t)}, "", createdAt)
	require.NoError(t, err)
	message, err := ports.NewOutboxMessage(o.Events()[0])
	require.NoError(t, err)
	require.NoError(t, outbox.Add(ctx, message))

	require.NoError(t, outbox.MarkSent(ctx, message.ID))

	pending, err := outbox.FetchPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.ErrorIs(t, outbox.MarkSent(ctx, uuid.New()), errs.ErrObjectNotFound)
}

func mustLine(t *testing.T) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.MustID(1), 1)
	require.NoError(t, err)
	return line
}
