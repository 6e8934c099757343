package services

import (
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/order"
)

// OwnershipGuard checks the restaurant reference of a request.
type OwnershipGuard struct{}

func NewOwnershipGuard() OwnershipGuard {
	return OwnershipGuard{}
}

// CheckRestaurantExists passes when the payload names a restaurant that was resolved.
func (OwnershipGuard) CheckRestaurantExists(requested *int64, resolved *catalog.Restaurant) []Violation {
	if requested == nil || resolved == nil || resolved.ID().Value() != *requested {
		return []Violation{violation("restaurantId", CodeRestaurantNotFound)}
	}
	return nil
}

// CheckRestaurantUnchanged passes when the payload omits the restaurant or repeats the
// persisted one. A missing order is reported as a restaurant change, not as not found.
func (OwnershipGuard) CheckRestaurantUnchanged(requested *int64, persisted *order.Order) []Violation {
	if requested == nil {
		return nil
	}
	if persisted == nil || persisted.RestaurantID().Value() != *requested {
		return []Violation{violation("restaurantId", CodeRestaurantImmutable)}
	}
	return nil
}
