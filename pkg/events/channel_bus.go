package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ChannelBus is the in-process bus backed by watermill's Go channel pub/sub.
// Events do not survive a restart.
type ChannelBus struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger watermill.LoggerAdapter
}

func NewChannelBus(topic string, logger watermill.LoggerAdapter) *ChannelBus {
	return &ChannelBus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
		topic:  topic,
		logger: logger,
	}
}

func (b *ChannelBus) Publish(ctx context.Context, event Event) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(event.EventId(), payload)
	msg.SetContext(ctx)
	return b.pubSub.Publish(b.topic, msg)
}

func (b *ChannelBus) Subscribe(ctx context.Context, handler Handler) error {
	messages, err := b.pubSub.Subscribe(ctx, b.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			event, err := Decode(msg.Payload)
			if err != nil {
				b.logger.Error("dropping undecodable event", err, watermill.LogFields{"uuid": msg.UUID})
				msg.Ack()
				continue
			}
			if err := handler(msg.Context(), event); err != nil {
				b.logger.Error("event handler failed", err, watermill.LogFields{"type": event.Type})
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}

func (b *ChannelBus) Close() error {
	return b.pubSub.Close()
}
