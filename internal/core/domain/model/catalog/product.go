package catalog

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrProductNameIsRequired is returned for an empty product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product is a menu item of exactly one restaurant. Availability is switched by the
// restaurant owner; unavailable products cannot be ordered.
type Product struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	available    bool
	guard        guard.ConstructorGuard
}

// NewProduct builds a catalog product.
//
// Parameters:
//   - id: product identity
//   - restaurantID: the owning restaurant
//   - name: display name, must not be empty
//   - available: whether the product can currently be ordered
func NewProduct(id kernel.ID, restaurantID kernel.ID, name string, available bool) (*Product, error) {
	var nameErr error
	if name == "" {
		nameErr = ErrProductNameIsRequired
	}

	if err := errors.Join(id.Validate(), restaurantID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Product{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		available:    available,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) RestaurantID() kernel.ID {
	return p.restaurantID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) IsAvailable() bool {
	return p.available
}

// CanBeOrderedFrom reports whether the product is available and sold by the given restaurant.
func (p *Product) CanBeOrderedFrom(restaurantID kernel.ID) bool {
	return p.available && p.restaurantID.IsEqual(restaurantID)
}
