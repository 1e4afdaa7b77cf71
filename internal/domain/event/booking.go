package event

import (
	"fmt"

	"github.com/google/uuid"
)

type BookingCreated struct {
	BookingID       uuid.UUID `json:"booking_id"`
	OfferID         uuid.UUID `json:"offer_id"`
	UserID          uuid.UUID `json:"user_id"`
	AgencyID        uuid.UUID `json:"agency_id"`
	TravelRequestID uuid.UUID `json:"travel_request_id"`
	TotalPriceMinor int64     `json:"total_price_minor"`
	Currency        string    `json:"currency"`
	Destination     *string   `json:"destination,omitempty"`
	AgencyName      string    `json:"agency_name"`
}

type BookingStatusChanged struct {
	BookingID uuid.UUID `json:"booking_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   uuid.UUID `json:"actor_id"`
	Reason    string    `json:"reason,omitempty"`
}

// PayloadAs extracts a typed payload, accepting both value and pointer forms.
func PayloadAs[T any](e Event) (T, error) {
	switch p := e.payload.(type) {
	case T:
		return p, nil
	case *T:
		if p != nil {
			return *p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("event %s (%s): unexpected payload type %T", e.name, e.id, e.payload)
}
