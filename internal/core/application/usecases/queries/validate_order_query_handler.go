package queries

import (
	"context"
)

// ValidateOrderQueryHandler runs the validation chain of an operation as a dry run.
// Only store failures are returned as errors; a rejection is a normal response.
type ValidateOrderQueryHandler struct {
	runner DryRunner
}

func NewValidateOrderQueryHandler(runner DryRunner) ValidateOrderQueryHandler {
	return ValidateOrderQueryHandler{runner: runner}
}

func (h ValidateOrderQueryHandler) Handle(
	ctx context.Context,
	query ValidateOrderQuery,
) (ValidateOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateOrderQueryResponse{}, err
	}

	verdict, err := h.runner.Validate(ctx, query.Request())
	if err != nil {
		return ValidateOrderQueryResponse{}, err
	}

	return ValidateOrderQueryResponse{
		Valid:      verdict.OK(),
		Violations: verdict.Violations(),
	}, nil
}
