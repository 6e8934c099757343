package memory

import (
	"context"
	"errors"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages order changes and applies them, together with the events of the
// tracked orders, on Commit.
type UnitOfWork struct {
	store   *Store
	active  bool
	staged  map[int64]*orderRecord
	tracked []*order.Order
}

// Begin waits for the previous unit of work to finish or ctx to be done.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	select {
	case uow.store.sem <- struct{}{}:
	case <-ctx.Done():
		return errs.NewStoreUnavailableError("begin", ctx.Err())
	}

	uow.active = true
	uow.staged = make(map[int64]*orderRecord)
	uow.tracked = nil
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.end()

	var messages []ports.OutboxMessage
	for _, o := range uow.tracked {
		for _, event := range o.PullEvents() {
			m, err := ports.NewOutboxMessage(event)
			if err != nil {
				return err
			}
			messages = append(messages, m)
		}
	}

	uow.store.apply(uow.staged, messages)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) end() {
	uow.active = false
	uow.staged = nil
	uow.tracked = nil
	<-uow.store.sem
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return &CatalogRepository{store: uow.store}
}

func (uow *UnitOfWork) track(o *order.Order) {
	uow.tracked = append(uow.tracked, o)
}

// lookup returns the staged version of an order, falling back to the store.
func (uow *UnitOfWork) lookup(id int64) (orderRecord, bool) {
	if uow.active {
		if rec, ok := uow.staged[id]; ok {
			if rec == nil {
				return orderRecord{}, false
			}
			return *rec, true
		}
	}
	return uow.store.order(id)
}
