package service

import (
	"context"

	"catalog-be/internal/pkg/logger"
	"catalog-be/pkg/events"
)

// publishAfterCommit sends a domain event once the write is durable. A bus
// failure is logged and never undoes or fails the write.
func publishAfterCommit(ctx context.Context, publisher events.Publisher, log logger.ILogger, module string, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn(module, "event publish failed", map[string]interface{}{
			"type":  event.EventType(),
			"id":    event.EventId(),
			"error": err.Error(),
		})
	}
}
