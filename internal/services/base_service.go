package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"maintenance-console/internal/events"
	"maintenance-console/pkg/contextkeys"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/eventbus"
	"maintenance-console/pkg/types"
)

// BaseService carries what every resource service needs: the event bus for
// change notifications and a logger.
type BaseService struct {
	resource string
	bus      *eventbus.Bus
	logger   *zap.Logger
}

func NewBaseService(resource string, bus *eventbus.Bus, logger *zap.Logger) *BaseService {
	return &BaseService{
		resource: resource,
		bus:      bus,
		logger:   logger.With(zap.String("resource", resource)),
	}
}

// fail logs a backend failure and wraps it into an HttpError whose message
// is the backend's own text, when it sent one. Callers fill in the
// operation's fallback message.
func (s *BaseService) fail(ctx context.Context, op string, err error, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, apperrors.ErrSuperseded) {
		return err
	}

	fields = append(fields, zap.String("op", op), zap.String("request_id", contextkeys.RequestID(ctx)), zap.Error(err))
	s.logger.Error("backend call failed", fields...)

	var msg string
	var be *apperrors.BackendError
	if errors.As(err, &be) {
		msg = be.Message
	}
	return apperrors.NewHttpError(apperrors.StatusCode(err), msg, err, map[string]interface{}{
		"resource": s.resource,
		"op":       op,
	})
}

func (s *BaseService) changed(ctx context.Context, action string, id uint64) {
	s.logger.Info("record "+action, zap.Uint64("id", id))
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.RecordChanged{
		Resource:  s.resource,
		Action:    action,
		ID:        id,
		SessionID: contextkeys.SessionID(ctx),
		RequestID: contextkeys.RequestID(ctx),
	})
}

func listResult[T any](rows []T, total uint64, filter types.Filter) *types.ListResult[T] {
	if rows == nil {
		rows = make([]T, 0)
	}
	return &types.ListResult[T]{
		Rows:       rows,
		Pagination: types.NewPagination(total, filter.Page, filter.Limit),
	}
}
