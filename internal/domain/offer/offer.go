package offer

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusViewed    Status = "VIEWED"
	StatusAccepted  Status = "ACCEPTED"
	StatusWithdrawn Status = "WITHDRAWN"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusViewed, StatusAccepted, StatusWithdrawn, StatusExpired:
		return true
	default:
		return false
	}
}

// IsOpen reports whether an offer in this status still competes for its travel request.
func (s Status) IsOpen() bool {
	return s == StatusSubmitted || s == StatusViewed
}

// OpenStatuses are withdrawn when a competing offer is accepted.
func OpenStatuses() []Status {
	return []Status{StatusSubmitted, StatusViewed}
}

type Offer struct {
	ID              uuid.UUID
	TravelRequestID uuid.UUID
	AgencyID        uuid.UUID
	AssignedAgentID *uuid.UUID
	TotalPriceMinor int64
	Currency        string
	Destination     *string
	Status          Status
}
