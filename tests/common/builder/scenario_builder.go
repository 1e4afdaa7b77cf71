//go:build unit || e2e

package builder

import (
	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"
	"travel-broker/tests/common/memstore"

	"github.com/google/uuid"
)

// AcceptanceScenario is one travel request with an offer ready to be accepted.
type AcceptanceScenario struct {
	TravelerID        uuid.UUID
	AgentID           uuid.UUID
	AgencyID          uuid.UUID
	TravelRequestID   uuid.UUID
	OfferID           uuid.UUID
	CompetingOfferIDs []uuid.UUID
}

type ScenarioBuilder struct {
	AgencyName      string
	GroupAddress    string
	AgentAddress    string
	TravelerAddress string
	PriceMinor      int64
	Currency        string
	Destination     *string
	OfferStatus     offer.Status
	RequestStatus   travelrequest.Status
	Competing       []offer.Status
	WithoutAgent    bool
}

func NewScenarioBuilder() *ScenarioBuilder {
	return &ScenarioBuilder{
		AgencyName:    "TravelCo",
		AgentAddress:  "chat:agent",
		PriceMinor:    150000,
		Currency:      "USD",
		OfferStatus:   offer.StatusSubmitted,
		RequestStatus: travelrequest.StatusOffersReceived,
	}
}

func (s *ScenarioBuilder) With(mutate func(*ScenarioBuilder)) *ScenarioBuilder {
	mutate(s)
	return s
}

func (s *ScenarioBuilder) Build(store *memstore.Store) AcceptanceScenario {
	var sc AcceptanceScenario

	sc.TravelerID = store.AddUser("Traveler", s.TravelerAddress)
	sc.AgencyID = store.AddAgency(s.AgencyName, s.GroupAddress)
	var agentID *uuid.UUID
	if !s.WithoutAgent {
		sc.AgentID = store.AddUser("Agent", s.AgentAddress)
		agentID = &sc.AgentID
	}

	sc.TravelRequestID = store.AddTravelRequest(travelrequest.TravelRequest{
		UserID:      sc.TravelerID,
		Destination: s.Destination,
		Status:      s.RequestStatus,
	})
	sc.OfferID = store.AddOffer(offer.Offer{
		TravelRequestID: sc.TravelRequestID,
		AgencyID:        sc.AgencyID,
		AssignedAgentID: agentID,
		TotalPriceMinor: s.PriceMinor,
		Currency:        s.Currency,
		Status:          s.OfferStatus,
	})
	for _, st := range s.Competing {
		otherAgency := store.AddAgency("Other Agency", "")
		sc.CompetingOfferIDs = append(sc.CompetingOfferIDs, store.AddOffer(offer.Offer{
			TravelRequestID: sc.TravelRequestID,
			AgencyID:        otherAgency,
			TotalPriceMinor: s.PriceMinor + 10000,
			Currency:        s.Currency,
			Status:          st,
		}))
	}
	return sc
}

// Fluent builder methods
func (s *ScenarioBuilder) WithGroupAddress(addr string) *ScenarioBuilder {
	s.GroupAddress = addr
	return s
}

func (s *ScenarioBuilder) WithTravelerAddress(addr string) *ScenarioBuilder {
	s.TravelerAddress = addr
	return s
}

func (s *ScenarioBuilder) WithDestination(dest string) *ScenarioBuilder {
	s.Destination = &dest
	return s
}

func (s *ScenarioBuilder) WithOfferStatus(st offer.Status) *ScenarioBuilder {
	s.OfferStatus = st
	return s
}

func (s *ScenarioBuilder) WithRequestStatus(st travelrequest.Status) *ScenarioBuilder {
	s.RequestStatus = st
	return s
}

func (s *ScenarioBuilder) WithCompetingOffers(statuses ...offer.Status) *ScenarioBuilder {
	s.Competing = append(s.Competing, statuses...)
	return s
}
