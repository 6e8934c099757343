package queries

import (
	"errors"

	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/guard"
)

var ErrValidateOrderQueryIsNotConstructed = errors.New(
	"ValidateOrderQuery must be created via NewValidateOrderQuery constructor",
)

// ValidateOrderQuery asks whether an operation would be accepted right now, without
// applying it.
type ValidateOrderQuery struct {
	request services.Request

	guard guard.ConstructorGuard
}

// NewValidateOrderQuery checks that the operation is known. The payload and order id are
// left to the validation engine.
func NewValidateOrderQuery(request services.Request) (ValidateOrderQuery, error) {
	if err := request.Operation.Validate(); err != nil {
		return ValidateOrderQuery{}, err
	}
	return ValidateOrderQuery{request: request, guard: guard.NewConstructorGuard()}, nil
}

func (q ValidateOrderQuery) Validate() error {
	return q.guard.Validate(ErrValidateOrderQueryIsNotConstructed)
}

func (q ValidateOrderQuery) Request() services.Request {
	return q.request
}

// ValidateOrderQueryResponse is the verdict of a dry run.
type ValidateOrderQueryResponse struct {
	Valid      bool
	Violations []services.Violation
}
