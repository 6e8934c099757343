package order

import (
	"fmt"
	"time"

	"foodorders/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is derived from the order's lifecycle
// timestamps and never stored on its own.
//
// State transitions:
//
//	Pending ──confirm──> Started ──send──> Sent ──deliver──> Delivered
//
// No transition may be skipped or reversed; Delivered is terminal. Only Pending orders
// can be revised or deleted.
type Status int

const (
	// Unknown is the zero value and is never a valid order state.
	Unknown Status = iota

	// Pending orders have no lifecycle timestamp set. They are still editable.
	Pending

	// Started orders have been confirmed by the restaurant (startedAt set).
	Started

	// Sent orders have left the restaurant (sentAt set).
	Sent

	// Delivered orders reached the customer (deliveredAt set). Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Started:   "in process",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Started:   "in process",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// ParseStatus maps the API representation ("pending", "in process", "sent", "delivered")
// back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// StatusOf derives the status from the lifecycle timestamps and checks that they are gated:
// sentAt requires startedAt, deliveredAt requires sentAt, and set timestamps never go back in time.
func StatusOf(startedAt, sentAt, deliveredAt *time.Time) (Status, error) {
	if sentAt != nil && startedAt == nil {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("sentAt is set while startedAt is not"))
	}
	if deliveredAt != nil && sentAt == nil {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("deliveredAt is set while sentAt is not"))
	}
	if sentAt != nil && sentAt.Before(*startedAt) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("sentAt %s is before startedAt %s", sentAt, startedAt))
	}
	if deliveredAt != nil && deliveredAt.Before(*sentAt) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("deliveredAt %s is before sentAt %s", deliveredAt, sentAt))
	}

	switch {
	case deliveredAt != nil:
		return Delivered, nil
	case sentAt != nil:
		return Sent, nil
	case startedAt != nil:
		return Started, nil
	default:
		return Pending, nil
	}
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the API representation of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsEditable reports whether lines, address or the order itself may still change.
func (s Status) IsEditable() bool {
	return s == Pending
}

// ValidateEditable returns an error unless the status is Pending.
func (s Status) ValidateEditable() error {
	if !s.IsEditable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to edit", s.String()),
		)
	}
	return nil
}

// Confirm transitions Pending -> Started.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Started, nil
}

// Send transitions Started -> Sent.
func (s Status) Send() (Status, error) {
	if s != Started {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to send", s.String()),
		)
	}
	return Sent, nil
}

// Deliver transitions Sent -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Sent {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
