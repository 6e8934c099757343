package services

import (
	"foodorders/internal/core/domain/model/kernel"
)

// LineInput is a product line as sent by the client. Values are raw so that malformed
// input reaches the checks instead of failing construction.
type LineInput struct {
	ProductID int64
	Quantity  int

	// RestaurantID is the optional per-line restaurant tag of the create body.
	RestaurantID *int64
}

// Payload is the body of a create or update request. Nil pointers mean "absent".
type Payload struct {
	RestaurantID *int64
	Address      *string
	Products     []LineInput
}

// ProductIDs returns the distinct positive product ids of the payload in input order.
func (p Payload) ProductIDs() []kernel.ID {
	seen := make(map[int64]struct{}, len(p.Products))
	ids := make([]kernel.ID, 0, len(p.Products))
	for _, line := range p.Products {
		if line.ProductID <= 0 {
			continue
		}
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, kernel.MustID(line.ProductID))
	}
	return ids
}

// Request is a proposed operation. OrderID is zero for create.
type Request struct {
	Operation Operation
	OrderID   kernel.ID
	Payload   Payload
}
