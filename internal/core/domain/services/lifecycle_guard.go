package services

import (
	"foodorders/internal/core/domain/model/order"
)

// LifecycleGuard decides whether a lifecycle transition is legal for the persisted order.
// Every check reads the order's own timestamps and returns at most one violation: the
// first failing precondition in the order started, sent, delivered.
type LifecycleGuard struct{}

func NewLifecycleGuard() LifecycleGuard {
	return LifecycleGuard{}
}

// CanConfirm passes only for a pending order.
func (LifecycleGuard) CanConfirm(o *order.Order) []Violation {
	if o.StartedAt() != nil {
		return []Violation{violation("startedAt", CodeAlreadyStarted)}
	}
	return nil
}

// CanSend passes only when the order is started and not yet sent.
func (LifecycleGuard) CanSend(o *order.Order) []Violation {
	switch {
	case o.StartedAt() == nil:
		return []Violation{violation("sentAt", CodeNotStarted)}
	case o.SentAt() != nil:
		return []Violation{violation("sentAt", CodeAlreadySent)}
	}
	return nil
}

// CanDeliver passes only when the order is started, sent and not yet delivered.
func (LifecycleGuard) CanDeliver(o *order.Order) []Violation {
	switch {
	case o.StartedAt() == nil:
		return []Violation{violation("deliveredAt", CodeNotStarted)}
	case o.SentAt() == nil:
		return []Violation{violation("deliveredAt", CodeNotSent)}
	case o.DeliveredAt() != nil:
		return []Violation{violation("deliveredAt", CodeAlreadyDelivered)}
	}
	return nil
}

// CanDestroy passes only for a pending order.
func (LifecycleGuard) CanDestroy(o *order.Order) []Violation {
	if o.StartedAt() != nil {
		return []Violation{violation("id", CodeAlreadyStarted)}
	}
	return nil
}

// CanUpdate passes only for a pending order.
func (LifecycleGuard) CanUpdate(o *order.Order) []Violation {
	if o.StartedAt() != nil {
		return []Violation{violation("startedAt", CodeAlreadyStarted)}
	}
	return nil
}
