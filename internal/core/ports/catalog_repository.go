package ports

import (
	"context"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
)

// CatalogRepository reads the restaurant catalog. The order core never writes it.
type CatalogRepository interface {
	// GetRestaurant returns *errs.ObjectNotFoundError for an unknown id.
	GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error)

	// GetProductsByIDs returns only the products that exist. Missing ids are not an error.
	GetProductsByIDs(ctx context.Context, ids []kernel.ID) ([]*catalog.Product, error)
}
