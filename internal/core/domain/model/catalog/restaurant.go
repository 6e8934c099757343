package catalog

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not built by NewRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrRestaurantNameIsRequired is returned for an empty restaurant name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
)

// Restaurant is the catalog entry an order is placed with.
type Restaurant struct {
	id    kernel.ID
	name  string
	guard guard.ConstructorGuard
}

// NewRestaurant builds a restaurant from its identity and display name.
func NewRestaurant(id kernel.ID, name string) (*Restaurant, error) {
	if err := errors.Join(id.Validate(), validateName(name)); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.ID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func validateName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	return nil
}
