package events

import (
	"context"
	"time"
)

// Type names a domain event. It doubles as the AMQP routing key.
type Type string

const (
	BusinessCreated Type = "business.created"
	BusinessUpdated Type = "business.updated"
	BusinessDeleted Type = "business.deleted"
	ReviewCreated   Type = "review.created"
	ReviewUpdated   Type = "review.updated"
	ReviewDeleted   Type = "review.deleted"
)

// Event is the envelope published for every state change.
type Event struct {
	Type       Type      `json:"type"`
	ResourceID int64     `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// New stamps an event with the current UTC time.
func New(t Type, id int64, data any) Event {
	return Event{Type: t, ResourceID: id, OccurredAt: time.Now().UTC(), Data: data}
}

// Publisher delivers domain events. Delivery is best effort: callers log
// failures and never fail the originating request because of them.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards events. It is used when no broker is configured.
type Noop struct{}

var _ Publisher = Noop{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
