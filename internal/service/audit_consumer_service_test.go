package service

import (
	"context"
	"testing"

	"catalog-be/internal/pkg/logger"
	"catalog-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type replaySubscriber struct {
	events []events.Event
}

func (s *replaySubscriber) Subscribe(ctx context.Context, handler events.Handler) error {
	for _, e := range s.events {
		if err := handler(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func TestAuditConsumerDropsRedeliveries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	saved := events.NewEvent(events.ProductSaved, map[string]interface{}{"id": 1})
	deleted := events.NewEvent(events.ProductDeleted, map[string]interface{}{"id": 1})

	sub := &replaySubscriber{events: []events.Event{saved, saved, deleted}}
	svc := NewAuditConsumerService(sub, logger.NewWithCore(core))

	require.NoError(t, svc.Consume(context.Background()))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, events.ProductSaved, entries[0].Message)
	assert.Equal(t, events.ProductDeleted, entries[1].Message)
}
