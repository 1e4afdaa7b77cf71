package travelrequest

import "github.com/google/uuid"

type Status string

const (
	StatusOpen           Status = "OPEN"
	StatusOffersReceived Status = "OFFERS_RECEIVED"
	StatusBooked         Status = "BOOKED"
	StatusCancelled      Status = "CANCELLED"
	StatusExpired        Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsBooked() bool {
	return s == StatusBooked
}

type TravelRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Destination *string
	Status      Status
}

func (tr TravelRequest) IsOwnedBy(userID uuid.UUID) bool {
	return tr.UserID == userID
}
