package memory

import (
	"context"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// CatalogRepository reads the seeded catalog.
type CatalogRepository struct {
	store *Store
}

func (r *CatalogRepository) GetRestaurant(_ context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	restaurant, ok := r.store.restaurants[id.Value()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", id.Value())
	}
	return restaurant, nil
}

func (r *CatalogRepository) GetProductsByIDs(_ context.Context, ids []kernel.ID) ([]*catalog.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id.Value()]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
