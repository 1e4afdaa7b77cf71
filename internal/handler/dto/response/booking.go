package response

import (
	"time"

	"travel-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ShortID         string    `json:"short_id"`
	TravelRequestID uuid.UUID `json:"travel_request_id"`
	OfferID         uuid.UUID `json:"offer_id"`
	UserID          uuid.UUID `json:"user_id"`
	AgencyID        uuid.UUID `json:"agency_id"`
	AgencyName      string    `json:"agency_name"`
	Status          string    `json:"status"`
	TotalPriceMinor int64     `json:"total_price_minor"`
	Currency        string    `json:"currency"`
	Destination     *string   `json:"destination,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type TransitionResponse struct {
	Booking       *BookingResponse       `json:"booking"`
	Notifications []NotificationResponse `json:"notifications"`
}
