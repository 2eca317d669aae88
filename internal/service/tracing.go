package service

import (
	"context"
	"errors"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/stpnv0/TimeslotBooker/internal/service")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan marks the span as failed only for errors that are not an expected
// business outcome.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		if !isRejection(err) {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

func isRejection(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrTimeslotNotOpen,
		domain.ErrTimeslotExpired,
		domain.ErrTimeslotFull,
		domain.ErrDuplicateBooking,
		domain.ErrForbidden,
		domain.ErrUnauthenticated,
		domain.ErrValidation,
		domain.ErrInvalidTransition,
		domain.ErrUsernameTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logDefect reports a constraint the database had to enforce on its own.
// The transaction checks should have made that impossible.
func logDefect(ctx context.Context, log logger.Logger, op string, err error) {
	var cv *domain.ConstraintViolationError
	if !errors.As(err, &cv) {
		return
	}
	log.LogAttrs(ctx, logger.ErrorLevel, "constraint violation",
		logger.String("op", op),
		logger.String("constraint", cv.Constraint),
		logger.String("error", err.Error()),
	)
}

func requireStaff(actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if !actor.IsStaff {
		return domain.ErrForbidden
	}
	return nil
}
