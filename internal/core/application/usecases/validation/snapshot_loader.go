package validation

import (
	"context"
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// Repositories is the part of a unit of work the loader reads from.
type Repositories interface {
	OrderRepository() ports.OrderRepository
	CatalogRepository() ports.CatalogRepository
}

// LoadSnapshot reads everything the chain of req.Operation needs. Not found results
// become nil entries of the snapshot; any other store error is returned as is.
// With forUpdate the order row stays locked until the unit of work ends.
func LoadSnapshot(
	ctx context.Context,
	repos Repositories,
	req services.Request,
	forUpdate bool,
) (services.Snapshot, error) {
	var (
		o          *order.Order
		restaurant *catalog.Restaurant
		products   []*catalog.Product
		err        error
	)

	if req.Operation.TargetsOrder() && !req.OrderID.IsZero() {
		if forUpdate {
			o, err = repos.OrderRepository().GetForUpdate(ctx, req.OrderID)
		} else {
			o, err = repos.OrderRepository().Get(ctx, req.OrderID)
		}
		if err = notFoundAsNil(err); err != nil {
			return services.Snapshot{}, fmt.Errorf("load order %s: %w", req.OrderID, err)
		}
	}

	if req.Operation == services.OperationCreate && req.Payload.RestaurantID != nil && *req.Payload.RestaurantID > 0 {
		id, _ := kernel.NewID(*req.Payload.RestaurantID)
		restaurant, err = repos.CatalogRepository().GetRestaurant(ctx, id)
		if err = notFoundAsNil(err); err != nil {
			return services.Snapshot{}, fmt.Errorf("load restaurant %s: %w", id, err)
		}
	}

	if req.Operation.ChecksCatalog() {
		if ids := req.Payload.ProductIDs(); len(ids) > 0 {
			products, err = repos.CatalogRepository().GetProductsByIDs(ctx, ids)
			if err != nil {
				return services.Snapshot{}, fmt.Errorf("load products: %w", err)
			}
		}
	}

	return services.NewSnapshot(o, restaurant, products), nil
}

func notFoundAsNil(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
