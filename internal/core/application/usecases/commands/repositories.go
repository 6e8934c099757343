// Package commands contains business operations that modify orders.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command follows the same pattern: open a unit of work, validate the operation
// against a locked snapshot, mutate the aggregate, persist and commit.
package commands

import (
	"context"

	"foodorders/internal/core/application/usecases/validation"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// UoW is the transaction every order command runs in. The snapshot is read and the
	// change is written through the same UoW.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   verdict, snapshot, err := evaluator.Evaluate(ctx, uow, req, true)
	//   // ... mutate snapshot.Order() and persist through uow.OrderRepository()
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}

	// Evaluator validates an operation inside the caller's unit of work.
	// *validation.Validator implements it.
	Evaluator interface {
		Evaluate(
			ctx context.Context,
			repos validation.Repositories,
			req services.Request,
			forUpdate bool,
		) (services.Verdict, services.Snapshot, error)
	}
)

func toLines(inputs []services.LineInput) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(inputs))
	for _, in := range inputs {
		productID, err := kernel.NewID(in.ProductID)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(productID, in.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
