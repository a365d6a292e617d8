package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"maintenance-console/internal/events"
	"maintenance-console/pkg/eventbus"
)

// AuditListener writes one structured line per record change.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RecordChanged{}.Name(), l.Handle)
}

func (l *AuditListener) Handle(ctx context.Context, e eventbus.Event) error {
	changed, ok := e.(events.RecordChanged)
	if !ok {
		return fmt.Errorf("audit: unexpected event %T", e)
	}
	l.logger.Info("record changed",
		zap.String("resource", changed.Resource),
		zap.String("action", changed.Action),
		zap.Uint64("id", changed.ID),
		zap.String("session_id", changed.SessionID),
		zap.String("request_id", changed.RequestID),
	)
	return nil
}
