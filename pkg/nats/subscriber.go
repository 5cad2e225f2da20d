package nats

import (
	"context"
	"fmt"

	"catalog-be/internal/pkg/logger"
	"catalog-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Subscriber handles listening for catalog events from NATS through a
// durable consumer, so nothing is lost while the service is down.
type Subscriber struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	durable string
	log     logger.ILogger
}

func NewSubscriber(url, durable string, log logger.ILogger) (*Subscriber, error) {
	nc, js, err := connect(url, log)
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc, js: js, durable: durable, log: log}, nil
}

// Subscribe consumes every catalog subject until ctx is done.
func (s *Subscriber) Subscribe(ctx context.Context, handler events.Handler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       s.durable,
		FilterSubject: subjectPrefix + ">",
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		s.handle(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	go func() {
		<-ctx.Done()
		consumeCtx.Stop()
	}()

	s.log.Info(logModule, "Subscribed to catalog events", map[string]interface{}{
		"subject": subjectPrefix + ">",
		"durable": s.durable,
	})
	return nil
}

// handle acks a processed message, naks it for redelivery when the handler
// fails and terminates it when it cannot be decoded.
func (s *Subscriber) handle(ctx context.Context, msg jetstream.Msg, handler events.Handler) {
	event, err := events.Decode(msg.Data())
	if err != nil {
		s.log.Error(logModule, "Dropping undecodable event", map[string]interface{}{
			"subject": msg.Subject(),
			"error":   err.Error(),
		})
		_ = msg.Term()
		return
	}

	if err := handler(ctx, event); err != nil {
		s.log.Warn(logModule, "Event handler failed", map[string]interface{}{
			"type":  event.Type,
			"id":    event.Id,
			"error": err.Error(),
		})
		_ = msg.Nak()
		return
	}

	_ = msg.Ack()
}

// Close closes the connection.
func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
