package shared

import (
	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"

	"github.com/google/uuid"
)

// OfferContext is everything the acceptance flow needs about one offer, read in a single query.
type OfferContext struct {
	Offer              offer.Offer
	TravelRequest      travelrequest.TravelRequest
	AgencyName         string
	AgencyGroupAddress string
	Agent              *Contact // nil when no agent is assigned
}

type Contact struct {
	UserID      uuid.UUID
	DisplayName string
	ChatAddress string
}
