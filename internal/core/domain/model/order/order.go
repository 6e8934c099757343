package order

import (
	"errors"
	"fmt"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order is built or revised without lines.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("lines")
)

// Order is a customer purchase from a single restaurant. It is the aggregate root that
// owns its lines and manages the lifecycle from pending to delivered.
//
// Order follows these invariants:
//   - Must have a valid identity and restaurant reference
//   - Must have at least one line
//   - sentAt is set only if startedAt is, deliveredAt only if sentAt is
//   - Timestamps are set once and never go back in time
//   - Once started, lines, address and restaurant are immutable
//   - Can only be created through NewOrder or RestoreOrder
//
// Status is derived from the timestamps and cached on the aggregate.
type Order struct {
	id           kernel.ID
	restaurantID kernel.ID
	address      string
	lines        []Line
	createdAt    time.Time

	// lifecycle timestamps, nil until the matching transition happened
	startedAt   *time.Time
	sentAt      *time.Time
	deliveredAt *time.Time

	status  Status
	deleted bool
	events  []Event

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order and records OrderCreated.
//
// Parameters:
//   - id: identity assigned by the store (see ports.OrderRepository.NextID)
//   - restaurantID: the restaurant the order is placed with
//   - lines: at least one line
//   - address: delivery address, may be empty
//   - now: creation time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors otherwise
//
// Example:
//
//	line, _ := order.NewLine(kernel.MustID(1), 2)
//	o, err := order.NewOrder(id, kernel.MustID(5), []order.Line{line}, "Main st. 1", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.ID, restaurantID kernel.ID, lines []Line, address string, now time.Time) (*Order, error) {
	o := &Order{
		address:   address,
		createdAt: now,
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.record(EventOrderCreated, now)
	return o, nil
}

// RestoreOrder rehydrates an order from storage. It runs the same field validation as
// NewOrder and additionally checks the timestamp gating. No event is recorded.
func RestoreOrder(
	id kernel.ID,
	restaurantID kernel.ID,
	lines []Line,
	address string,
	createdAt time.Time,
	startedAt, sentAt, deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		address:     address,
		createdAt:   createdAt,
		startedAt:   cloneTime(startedAt),
		sentAt:      cloneTime(sentAt),
		deliveredAt: cloneTime(deliveredAt),
		guard:       guard.NewConstructorGuard(),
	}

	status, statusErr := StatusOf(startedAt, sentAt, deliveredAt)
	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setLines(lines),
		statusErr,
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

func (o *Order) Address() string {
	return o.address
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) StartedAt() *time.Time {
	return cloneTime(o.startedAt)
}

func (o *Order) SentAt() *time.Time {
	return cloneTime(o.sentAt)
}

func (o *Order) DeliveredAt() *time.Time {
	return cloneTime(o.deliveredAt)
}

func (o *Order) Status() Status {
	return o.status
}

// IsDeleted reports whether MarkDeleted was called on this instance.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// Revise replaces lines and address of a pending order and records OrderUpdated.
// The restaurant cannot be changed.
func (o *Order) Revise(lines []Line, address string, now time.Time) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	if err := o.setLines(lines); err != nil {
		return err
	}

	o.address = address
	o.record(EventOrderUpdated, now)
	return nil
}

// Confirm marks the order as started by the restaurant.
//
// Returns:
//   - nil on success, startedAt is set and status becomes Started
//   - error if the order is not pending
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if err := notBefore("startedAt", now, &o.createdAt); err != nil {
		return err
	}

	o.startedAt = &now
	o.status = newStatus
	o.record(EventOrderConfirmed, now)
	return nil
}

// Send marks a started order as sent out for delivery.
func (o *Order) Send(now time.Time) error {
	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}
	if err := notBefore("sentAt", now, o.startedAt); err != nil {
		return err
	}

	o.sentAt = &now
	o.status = newStatus
	o.record(EventOrderSent, now)
	return nil
}

// Deliver marks a sent order as delivered. Delivered is final.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	if err := notBefore("deliveredAt", now, o.sentAt); err != nil {
		return err
	}

	o.deliveredAt = &now
	o.status = newStatus
	o.record(EventOrderDelivered, now)
	return nil
}

// MarkDeleted flags a pending order for removal and records OrderDeleted.
// The repository performs the actual delete.
func (o *Order) MarkDeleted(now time.Time) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}

	o.deleted = true
	o.record(EventOrderDeleted, now)
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return fmt.Errorf("restaurant: %w", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	validated := make([]Line, 0, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		validated = append(validated, line)
	}

	o.lines = validated
	return nil
}

func notBefore(field string, at time.Time, previous *time.Time) error {
	if previous != nil && at.Before(*previous) {
		return errs.NewValueIsInvalidErrorWithCause(
			field+" is invalid",
			fmt.Errorf("%s is before %s", at.Format(time.RFC3339), previous.Format(time.RFC3339)),
		)
	}
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
