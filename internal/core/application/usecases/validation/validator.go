package validation

import (
	"context"
	"errors"

	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrUnitOfWorkFactoryIsRequired = errors.New("unit of work factory is required")

	tracer = otel.Tracer("foodorders/validation")
)

// Recorder observes verdicts. telemetry.Metrics implements it.
type Recorder interface {
	ObserveVerdict(op services.Operation, verdict services.Verdict)
}

type noopRecorder struct{}

func (noopRecorder) ObserveVerdict(services.Operation, services.Verdict) {}

// Validator loads a snapshot and evaluates the operation chain over it.
type Validator struct {
	uowFactory ports.UnitOfWorkFactory
	engine     services.OrderValidator
	recorder   Recorder
}

// NewValidator creates a Validator. Both arguments may be nil: without a factory only
// Evaluate can be used, without a recorder verdicts are not observed.
func NewValidator(uowFactory ports.UnitOfWorkFactory, recorder Recorder) *Validator {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Validator{
		uowFactory: uowFactory,
		engine:     services.NewOrderValidator(),
		recorder:   recorder,
	}
}

// Validate is a dry run: it opens its own unit of work, evaluates and rolls back.
// Store failures are returned as errors; rejections only live in the verdict.
func (v *Validator) Validate(ctx context.Context, req services.Request) (services.Verdict, error) {
	if v.uowFactory == nil {
		return services.Verdict{}, ErrUnitOfWorkFactoryIsRequired
	}

	uow := v.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Verdict{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	verdict, _, err := v.Evaluate(ctx, uow, req, false)
	return verdict, err
}

// Evaluate runs inside the caller's unit of work and also returns the snapshot so that
// the caller can mutate the very order it validated.
func (v *Validator) Evaluate(
	ctx context.Context,
	repos Repositories,
	req services.Request,
	forUpdate bool,
) (services.Verdict, services.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "validate "+req.Operation.String(),
		trace.WithAttributes(
			attribute.String("order.operation", req.Operation.String()),
			attribute.Int64("order.id", req.OrderID.Value()),
		),
	)
	defer span.End()

	snapshot, err := LoadSnapshot(ctx, repos, req, forUpdate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return services.Verdict{}, services.Snapshot{}, err
	}

	verdict, err := v.engine.Validate(snapshot, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return services.Verdict{}, services.Snapshot{}, err
	}

	span.SetAttributes(
		attribute.Bool("validation.ok", verdict.OK()),
		attribute.Int("validation.violations", len(verdict.Violations())),
	)
	v.recorder.ObserveVerdict(req.Operation, verdict)

	return verdict, snapshot, nil
}
