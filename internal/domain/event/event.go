// Package event defines the immutable domain event record passed over the in-process bus.
package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	NameBookingCreated       = "booking.created"
	NameBookingStatusChanged = "booking.status_changed"
)

type Event struct {
	id         uuid.UUID
	occurredAt time.Time
	name       string
	payload    any
}

func New(name string, payload any, occurredAt time.Time) Event {
	return Event{
		id:         uuid.New(),
		occurredAt: occurredAt,
		name:       name,
		payload:    payload,
	}
}

func (e Event) ID() uuid.UUID         { return e.id }
func (e Event) OccurredAt() time.Time { return e.occurredAt }
func (e Event) Name() string          { return e.name }
func (e Event) Payload() any          { return e.payload }
