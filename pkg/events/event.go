package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all catalog events.
type Event interface {
	// EventId is unique per occurrence and lets consumers drop redeliveries.
	EventId() string

	// EventType returns the unique code for this event (e.g., "PRODUCT_SAVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	ProductSaved    = "PRODUCT_SAVED"
	ProductDeleted  = "PRODUCT_DELETED"
	CategorySaved   = "CATEGORY_SAVED"
	CategoryDeleted = "CATEGORY_DELETED"
	UserRegistered  = "USER_REGISTERED"
	UserLoggedIn    = "USER_LOGGED_IN"
	UserDeleted     = "USER_DELETED"
)

type BaseEvent struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = make(map[string]interface{})
	}
	return BaseEvent{
		Id:         uuid.NewString(),
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventId() string {
	return e.Id
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Encode serialises any Event into the wire envelope shared by every bus.
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(BaseEvent{
		Id:         e.EventId(),
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", e.EventType(), err)
	}
	return data, nil
}

func Decode(data []byte) (BaseEvent, error) {
	var e BaseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return BaseEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if e.Type == "" {
		return BaseEvent{}, fmt.Errorf("event without type")
	}
	return e, nil
}

// Publisher sends events to a bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Handler processes one delivered event. Returning an error asks the bus to
// redeliver.
type Handler func(ctx context.Context, event Event) error

// Subscriber delivers events to a handler until ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, handler Handler) error
}

type nopPublisher struct{}

// NopPublisher drops every event.
func NopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
