package services

import (
	"fmt"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
)

// ProductLookup resolves a product by raw id. Snapshot implements it.
type ProductLookup interface {
	Product(id int64) (*catalog.Product, bool)
}

// CatalogChecker validates a candidate product list against the catalog.
//
// The checks are independent and all of them must pass:
//   - the list is not empty
//   - every line has a positive product id and a positive quantity
//   - every product exists, is available and belongs to the target restaurant
//   - every quantity is positive, reported per line
//   - lines tagged with a restaurant all carry the same tag
//
// An empty list only fails the first check.
type CatalogChecker struct{}

func NewCatalogChecker() CatalogChecker {
	return CatalogChecker{}
}

// CheckShape reports an empty list or a malformed line. Both rules report on "products".
func (CatalogChecker) CheckShape(lines []LineInput) []Violation {
	if len(lines) == 0 {
		return []Violation{violation("products", CodeEmptyOrInvalidProductList)}
	}
	for _, line := range lines {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return []Violation{violation("products", CodeInvalidProductLine)}
		}
	}
	return nil
}

// CheckAvailability resolves every line against the catalog. Missing ids are treated as
// unavailable. A nil target restaurant matches no product.
func (CatalogChecker) CheckAvailability(lines []LineInput, target *int64, products ProductLookup) []Violation {
	var restaurantID kernel.ID
	if target != nil {
		restaurantID, _ = kernel.NewID(*target)
	}
	for _, line := range lines {
		p, ok := products.Product(line.ProductID)
		if !ok || restaurantID.IsZero() || !p.CanBeOrderedFrom(restaurantID) {
			return []Violation{violation("products", CodeProductNotAvailableOrWrongRestaurant)}
		}
	}
	return nil
}

// CheckQuantities reports every line whose quantity is not positive.
func (CatalogChecker) CheckQuantities(lines []LineInput) []Violation {
	var out []Violation
	for i, line := range lines {
		if line.Quantity <= 0 {
			out = append(out, violation(fmt.Sprintf("products[%d].quantity", i), CodeQuantityNotPositive))
		}
	}
	return out
}

// CheckSingleRestaurant compares every line's restaurant tag with the first line's.
// A list where no line is tagged passes.
func (CatalogChecker) CheckSingleRestaurant(lines []LineInput) []Violation {
	if len(lines) == 0 {
		return nil
	}
	first := lines[0].RestaurantID
	for _, line := range lines[1:] {
		if !sameTag(first, line.RestaurantID) {
			return []Violation{violation("products", CodeMixedRestaurantProducts)}
		}
	}
	return nil
}

func sameTag(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
