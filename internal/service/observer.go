package service

import (
	"context"
	"errors"
	"time"

	"catalog-be/internal/apperror"
	"catalog-be/internal/metrics"
	"catalog-be/internal/pkg/logger"
)

// Observer applies the cross-cutting policy around every service call:
// authorization first, then timing, logging and metrics.
type Observer struct {
	module     string
	authorizer Authorizer
	logger     logger.ILogger
	metrics    *metrics.Metrics
}

func NewObserver(module string, authorizer Authorizer, log logger.ILogger, m *metrics.Metrics) *Observer {
	return &Observer{module: module, authorizer: authorizer, logger: log, metrics: m}
}

func observe[T any](ctx context.Context, o *Observer, op Operation, details map[string]interface{}, fn func() (T, error)) (T, error) {
	start := time.Now()
	if err := o.authorizer.Authorize(ctx, op); err != nil {
		o.finish(op, start, details, err)
		var zero T
		return zero, err
	}

	o.logger.Debug(o.module, "enter "+string(op), details)
	result, err := fn()
	o.finish(op, start, details, err)
	return result, err
}

func (o *Observer) finish(op Operation, start time.Time, details map[string]interface{}, err error) {
	elapsed := time.Since(start)
	outcome := outcomeOf(err)
	if o.metrics != nil {
		o.metrics.ObserveOperation(string(op), outcome, elapsed)
	}

	fields := map[string]interface{}{
		"operation":  string(op),
		"outcome":    outcome,
		"elapsed_ms": elapsed.Milliseconds(),
	}
	for k, v := range details {
		fields[k] = v
	}

	switch {
	case err == nil:
		o.logger.Info(o.module, "exit "+string(op), fields)
	case outcome == "persistence" || outcome == "error":
		fields["error"] = err.Error()
		o.logger.Error(o.module, "failed "+string(op), fields)
	default:
		fields["error"] = err.Error()
		o.logger.Warn(o.module, "rejected "+string(op), fields)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperror.ErrAuthorization):
		return "forbidden"
	case errors.Is(err, apperror.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperror.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, apperror.ErrValidation):
		return "invalid"
	case errors.Is(err, apperror.ErrMapping), errors.Is(err, apperror.ErrUnrecognizedEnumValue):
		return "mapping"
	case errors.Is(err, apperror.ErrPersistence):
		return "persistence"
	}
	return "error"
}

// storeErr wraps an unexpected store failure. Errors that already belong to
// the taxonomy pass through untouched.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{
		apperror.ErrNotFound,
		apperror.ErrConcurrentModification,
		apperror.ErrPersistence,
		apperror.ErrMapping,
		apperror.ErrUnrecognizedEnumValue,
		apperror.ErrValidation,
		apperror.ErrAuthorization,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return apperror.NewPersistenceError(op, err)
}
