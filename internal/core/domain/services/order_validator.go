package services

import (
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
)

// OrderValidator composes the guards into one ordered chain per operation:
//
//	create   ownership(restaurant exists) -> shape -> availability(payload restaurant)
//	         -> quantities -> single restaurant
//	update   ownership(restaurant unchanged) -> shape -> availability(order restaurant)
//	         -> lifecycle(update)
//	destroy  lifecycle(destroy)
//	confirm  lifecycle(confirm)
//	send     lifecycle(send)
//	deliver  lifecycle(deliver)
//
// Every link runs and all violations are collected in chain order. For operations on an
// existing order a missing order is reported first and the links that need the order are
// skipped.
//
// Validate is a pure function of the snapshot and the request: it has no side effects and
// the same inputs always give the same verdict.
//
// Example usage:
//
//	validator := services.NewOrderValidator()
//	verdict, err := validator.Validate(snapshot, services.Request{
//	    Operation: services.OperationConfirm,
//	    OrderID:   orderID,
//	})
//	if err != nil {
//	    // Unknown operation
//	}
//	if err := verdict.Err(); err != nil {
//	    // Render err.(*services.Rejection).Violations
//	}
type OrderValidator struct {
	lifecycle LifecycleGuard
	catalog   CatalogChecker
	ownership OwnershipGuard
}

func NewOrderValidator() OrderValidator {
	return OrderValidator{
		lifecycle: NewLifecycleGuard(),
		catalog:   NewCatalogChecker(),
		ownership: NewOwnershipGuard(),
	}
}

// Validate runs the chain of req.Operation over the snapshot.
//
// Returns:
//   - Verdict: OK or the collected violations
//   - error: only for an unknown operation
func (v OrderValidator) Validate(snapshot Snapshot, req Request) (Verdict, error) {
	if err := req.Operation.Validate(); err != nil {
		return Verdict{}, err
	}

	var out []Violation
	o := snapshot.Order()

	if req.Operation.TargetsOrder() && (o == nil || !o.ID().IsEqual(req.OrderID)) {
		out = append(out, violation("id", CodeOrderNotFound))
		o = nil
	}

	lines := req.Payload.Products

	switch req.Operation {
	case OperationCreate:
		out = append(out, v.ownership.CheckRestaurantExists(req.Payload.RestaurantID, snapshot.Restaurant())...)
		out = append(out, v.catalog.CheckShape(lines)...)
		out = append(out, v.catalog.CheckAvailability(lines, req.Payload.RestaurantID, snapshot)...)
		out = append(out, v.catalog.CheckQuantities(lines)...)
		out = append(out, v.catalog.CheckSingleRestaurant(lines)...)

	case OperationUpdate:
		out = append(out, v.ownership.CheckRestaurantUnchanged(req.Payload.RestaurantID, o)...)
		out = append(out, v.catalog.CheckShape(lines)...)
		if o != nil {
			out = append(out, v.catalog.CheckAvailability(lines, restaurantOf(o.RestaurantID()), snapshot)...)
			out = append(out, v.lifecycle.CanUpdate(o)...)
		}

	case OperationDestroy:
		if o != nil {
			out = append(out, v.lifecycle.CanDestroy(o)...)
		}

	case OperationConfirm:
		if o != nil {
			out = append(out, v.lifecycle.CanConfirm(o)...)
		}

	case OperationSend:
		if o != nil {
			out = append(out, v.lifecycle.CanSend(o)...)
		}

	case OperationDeliver:
		if o != nil {
			out = append(out, v.lifecycle.CanDeliver(o)...)
		}

	default:
		return Verdict{}, fmt.Errorf("no validation chain for operation %s", req.Operation)
	}

	return Verdict{operation: req.Operation, violations: out}, nil
}

func restaurantOf(id kernel.ID) *int64 {
	v := id.Value()
	return &v
}
