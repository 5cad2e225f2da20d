package service

import (
	"context"
	"time"

	"catalog-be/internal/pkg/logger"
	"catalog-be/pkg/events"

	"github.com/patrickmn/go-cache"
)

const auditModule = "Audit"

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService writes every catalog event to the audit log. Buses
// deliver at least once, so recently seen event ids are remembered and
// skipped.
type auditConsumerService struct {
	subscriber events.Subscriber
	audit      logger.ILogger
	seen       *cache.Cache
}

func NewAuditConsumerService(subscriber events.Subscriber, audit logger.ILogger) IAuditConsumerService {
	return &auditConsumerService{
		subscriber: subscriber,
		audit:      audit,
		seen:       cache.New(time.Hour, 10*time.Minute),
	}
}

func (s *auditConsumerService) Consume(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, s.handle)
}

func (s *auditConsumerService) handle(ctx context.Context, event events.Event) error {
	// Add fails when the id is already present
	if err := s.seen.Add(event.EventId(), struct{}{}, cache.DefaultExpiration); err != nil {
		return nil
	}

	s.audit.Info(auditModule, event.EventType(), map[string]interface{}{
		"event_id":    event.EventId(),
		"occurred_at": event.Timestamp().Format(time.RFC3339Nano),
		"data":        event.Payload(),
	})
	return nil
}
