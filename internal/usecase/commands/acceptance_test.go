//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/usecase/commands"
	"travel-broker/tests/common/builder"
	"travel-broker/tests/common/fakes"
	"travel-broker/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AcceptanceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	publisher *fakes.Publisher
	clock     *clock.MockClock
	logs      *bytes.Buffer
	logger    *slog.Logger
}

func TestAcceptanceSuite(t *testing.T) {
	suite.Run(t, new(AcceptanceSuite))
}

func (s *AcceptanceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.publisher = &fakes.Publisher{}
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(s.logs, nil))
}

func (s *AcceptanceSuite) newUseCase(cfg commands.AcceptanceConfig) commands.AcceptanceCommands {
	statuses := commands.NewBookingStatusUseCase(s.store, s.publisher, s.clock, s.logger)
	return commands.NewAcceptanceUseCase(s.store, statuses, s.publisher, s.clock, s.logger, cfg)
}

func addresses(reqs []notification.Request) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Address)
	}
	return out
}

func (s *AcceptanceSuite) TestConfirm_HappyPath() {
	sc := builder.NewScenarioBuilder().WithDestination("Bali").Build(s.store)
	uc := s.newUseCase(commands.AcceptanceConfig{})

	res, err := uc.ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
	s.Require().NotNil(res.BookingID)
	s.Require().NotNil(res.TravelRequestID)
	s.Equal(sc.TravelRequestID, *res.TravelRequestID)
	s.Contains(res.Message, "TravelCo")
	s.Contains(res.Message, "1,500 USD")
	s.False(res.NeedsReconciliation)

	s.Require().Len(res.Notifications, 1)
	agent := res.Notifications[0]
	s.Equal("chat:agent", agent.Address)
	s.Equal(notification.RoleAgent, agent.Role)
	s.Contains(agent.Text, "Offer Accepted")
	s.Equal(notification.TemplateKey("booking.created.agent"), agent.TemplateKey)
	s.Len(agent.Actions, 2, "confirm/reject prompt merged from the first transition")

	b := s.store.Booking(*res.BookingID)
	s.Require().NotNil(b)
	s.Equal(booking.StatusAwaitingAgencyConfirmation, b.Status())
	s.Equal(offer.StatusAccepted, s.store.Offer(sc.OfferID).Status)
	s.Equal(travelrequest.StatusBooked, s.store.TravelRequest(sc.TravelRequestID).Status)

	created := s.publisher.Named(event.NameBookingCreated)
	s.Require().Len(created, 1)
	payload, err := event.PayloadAs[event.BookingCreated](created[0])
	s.Require().NoError(err)
	s.Equal(*res.BookingID, payload.BookingID)
	s.Equal(int64(150000), payload.TotalPriceMinor)
	s.Equal("TravelCo", payload.AgencyName)
	s.Len(s.publisher.Named(event.NameBookingStatusChanged), 1)
}

func (s *AcceptanceSuite) TestConfirm_OutboundKeepsAgencyPromptSeparate() {
	sc := builder.NewScenarioBuilder().WithGroupAddress("chat:group").Build(s.store)
	uc := s.newUseCase(commands.AcceptanceConfig{})

	res, err := uc.ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

	s.Require().NoError(err)
	s.Require().NotNil(res.BookingID)
	s.Equal([]string{"chat:agent", "chat:group"}, addresses(res.Notifications))

	keys := make([]notification.TemplateKey, 0, len(res.Outbound))
	for _, r := range res.Outbound {
		keys = append(keys, r.TemplateKey)
	}
	s.Equal([]notification.TemplateKey{
		"booking.created.agent",
		"booking.created.agency_group",
		"booking.status.awaiting_agency_confirmation.agent",
		"booking.status.awaiting_agency_confirmation.agency_group",
	}, keys)
	s.Empty(res.Outbound[0].Actions)
	s.Empty(res.Outbound[1].Actions)
	for _, r := range res.Outbound[2:] {
		s.Require().Len(r.Actions, 2)
		s.Equal("booking:"+res.BookingID.String()+":confirm", r.Actions[0].Payload)
		s.Equal("booking:"+res.BookingID.String()+":reject", r.Actions[1].Payload)
	}
}

func (s *AcceptanceSuite) TestConfirm_RejectedOutcomes() {
	tests := []struct {
		name    string
		setup   func(*builder.ScenarioBuilder)
		actor   func(sc builder.AcceptanceScenario) uuid.UUID
		offer   func(sc builder.AcceptanceScenario) uuid.UUID
		outcome commands.AcceptanceOutcome
	}{
		{
			name:    "unknown offer",
			offer:   func(builder.AcceptanceScenario) uuid.UUID { return uuid.New() },
			outcome: commands.OutcomeOfferNotFound,
		},
		{
			name:    "someone else's travel request",
			actor:   func(builder.AcceptanceScenario) uuid.UUID { return uuid.New() },
			outcome: commands.OutcomeNotAuthorized,
		},
		{
			name:    "travel request already booked",
			setup:   func(b *builder.ScenarioBuilder) { b.RequestStatus = travelrequest.StatusBooked },
			outcome: commands.OutcomeAlreadyBooked,
		},
		{
			name:    "offer already accepted",
			setup:   func(b *builder.ScenarioBuilder) { b.OfferStatus = offer.StatusAccepted },
			outcome: commands.OutcomeAlreadyAccepted,
		},
		{
			name:    "offer withdrawn",
			setup:   func(b *builder.ScenarioBuilder) { b.OfferStatus = offer.StatusWithdrawn },
			outcome: commands.OutcomeOfferUnavailable,
		},
		{
			name:    "offer expired",
			setup:   func(b *builder.ScenarioBuilder) { b.OfferStatus = offer.StatusExpired },
			outcome: commands.OutcomeOfferUnavailable,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			sb := builder.NewScenarioBuilder()
			if tt.setup != nil {
				sb.With(tt.setup)
			}
			sc := sb.Build(s.store)
			actor, offerID := sc.TravelerID, sc.OfferID
			if tt.actor != nil {
				actor = tt.actor(sc)
			}
			if tt.offer != nil {
				offerID = tt.offer(sc)
			}

			res, err := s.newUseCase(commands.AcceptanceConfig{BroadcastAddress: "chat:managers"}).
				ConfirmAcceptance(s.ctx, offerID, actor)

			s.Require().NoError(err)
			s.Equal(tt.outcome, res.Outcome)
			s.NotEmpty(res.Message)
			s.Nil(res.BookingID)
			s.Empty(res.Notifications)
			s.Zero(s.store.Commits())
			s.Empty(s.publisher.Events())
		})
	}
}

func (s *AcceptanceSuite) TestConfirm_WithdrawsCompetingOffersOnly() {
	sc := builder.NewScenarioBuilder().
		WithCompetingOffers(offer.StatusViewed, offer.StatusSubmitted, offer.StatusExpired).
		Build(s.store)
	unrelated := builder.NewScenarioBuilder().Build(s.store)

	res, err := s.newUseCase(commands.AcceptanceConfig{}).ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

	s.Require().NoError(err)
	s.Require().Equal(commands.OutcomeAccepted, res.Outcome)
	s.Equal(offer.StatusWithdrawn, s.store.Offer(sc.CompetingOfferIDs[0]).Status)
	s.Equal(offer.StatusWithdrawn, s.store.Offer(sc.CompetingOfferIDs[1]).Status)
	s.Equal(offer.StatusExpired, s.store.Offer(sc.CompetingOfferIDs[2]).Status)
	s.Equal(offer.StatusSubmitted, s.store.Offer(unrelated.OfferID).Status)
	s.Equal(travelrequest.StatusOffersReceived, s.store.TravelRequest(unrelated.TravelRequestID).Status)
}

func (s *AcceptanceSuite) TestConfirm_ManagerBroadcastToggledByConfig() {
	s.Run("no broadcast address", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().Build(s.store)

		res, err := s.newUseCase(commands.AcceptanceConfig{}).ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

		s.Require().NoError(err)
		s.Equal([]string{"chat:agent"}, addresses(res.Notifications))
	})

	s.Run("broadcast address configured", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().Build(s.store)

		res, err := s.newUseCase(commands.AcceptanceConfig{BroadcastAddress: "chat:managers"}).
			ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

		s.Require().NoError(err)
		s.Require().Equal([]string{"chat:agent", "chat:managers"}, addresses(res.Notifications))
		s.Contains(res.Notifications[1].Text, "New Booking")
		s.Equal(notification.RoleManager, res.Notifications[1].Role)
	})
}

func (s *AcceptanceSuite) TestConfirm_AgencyGroupDedupedAgainstAgent() {
	s.Run("distinct group address", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().WithGroupAddress("chat:group").Build(s.store)

		res, err := s.newUseCase(commands.AcceptanceConfig{}).ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

		s.Require().NoError(err)
		s.Equal([]string{"chat:agent", "chat:group"}, addresses(res.Notifications))
	})

	s.Run("group shares the agent address", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().WithGroupAddress("chat:agent").Build(s.store)

		res, err := s.newUseCase(commands.AcceptanceConfig{BroadcastAddress: "chat:agent"}).
			ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

		s.Require().NoError(err)
		s.Equal([]string{"chat:agent"}, addresses(res.Notifications))
	})
}

func (s *AcceptanceSuite) TestConfirm_SecondAttemptIsAlreadyBooked() {
	sc := builder.NewScenarioBuilder().WithCompetingOffers(offer.StatusSubmitted).Build(s.store)
	uc := s.newUseCase(commands.AcceptanceConfig{})

	first, err := uc.ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)
	s.Require().NoError(err)
	s.Require().Equal(commands.OutcomeAccepted, first.Outcome)

	for _, offerID := range []uuid.UUID{sc.OfferID, sc.CompetingOfferIDs[0]} {
		again, err := uc.ConfirmAcceptance(s.ctx, offerID, sc.TravelerID)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeAlreadyBooked, again.Outcome)
	}
	s.Len(s.store.Bookings(), 1)
}

func (s *AcceptanceSuite) TestConfirm_TransitionFailureIsNotFatal() {
	sc := builder.NewScenarioBuilder().Build(s.store)
	s.store.FailStatusUpdates(errors.New("connection reset"))

	res, err := s.newUseCase(commands.AcceptanceConfig{}).ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
	s.True(res.NeedsReconciliation)
	s.Require().NotNil(res.BookingID)
	s.Equal(booking.StatusCreated, s.store.Booking(*res.BookingID).Status())
	s.Equal([]string{"chat:agent"}, addresses(res.Notifications))
	s.Contains(s.logs.String(), "CRITICAL")
}

func (s *AcceptanceSuite) TestConfirm_PublishFailureIsNotFatal() {
	sc := builder.NewScenarioBuilder().Build(s.store)
	s.publisher.Err = errors.New("bus closed")

	res, err := s.newUseCase(commands.AcceptanceConfig{}).ConfirmAcceptance(s.ctx, sc.OfferID, sc.TravelerID)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
	s.Contains(s.logs.String(), `level=ERROR msg="failed to publish booking created"`)
	s.Contains(s.logs.String(), `level=ERROR msg="failed to publish status change"`)
}

func (s *AcceptanceSuite) TestShowConfirmation() {
	s.Run("ready", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().WithDestination("Lisbon").Build(s.store)

		prompt, err := s.newUseCase(commands.AcceptanceConfig{}).ShowConfirmation(s.ctx, sc.OfferID, sc.TravelerID)

		s.Require().NoError(err)
		s.Equal(commands.OutcomeReadyToConfirm, prompt.Outcome)
		s.Contains(prompt.Message, "TravelCo")
		s.Contains(prompt.Message, "1,500 USD")
		s.Contains(prompt.Message, "Lisbon")
		s.Require().Len(prompt.Choices, 2)
		s.Equal("offer:"+sc.OfferID.String()+":confirm", prompt.Choices[0].Payload)
		s.Equal("offer:"+sc.OfferID.String()+":cancel", prompt.Choices[1].Payload)
		s.Zero(s.store.Commits())
		s.Equal(offer.StatusSubmitted, s.store.Offer(sc.OfferID).Status)
	})

	s.Run("not authorized", func() {
		s.SetupTest()
		sc := builder.NewScenarioBuilder().Build(s.store)

		prompt, err := s.newUseCase(commands.AcceptanceConfig{}).ShowConfirmation(s.ctx, sc.OfferID, uuid.New())

		s.Require().NoError(err)
		s.Equal(commands.OutcomeNotAuthorized, prompt.Outcome)
		s.Empty(prompt.Choices)
	})
}

// Both callers pass the pre-checks before either transaction runs.
func raceBarrier(parties int32) func() {
	var arrived atomic.Int32
	release := make(chan struct{})
	return func() {
		n := arrived.Add(1)
		if n == parties {
			close(release)
		}
		if n <= parties {
			<-release
		}
	}
}

func TestConfirm_ConcurrentAcceptance(t *testing.T) {
	tests := []struct {
		name      string
		sameOffer bool
	}{
		{name: "same offer twice", sameOffer: true},
		{name: "two offers of one travel request", sameOffer: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			sc := builder.NewScenarioBuilder().WithCompetingOffers(offer.StatusSubmitted).Build(store)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
			pub := &fakes.Publisher{}
			statuses := commands.NewBookingStatusUseCase(store, pub, clk, logger)
			uc := commands.NewAcceptanceUseCase(store, statuses, pub, clk, logger, commands.AcceptanceConfig{})

			store.OnOfferContextRead(raceBarrier(2))

			offers := []uuid.UUID{sc.OfferID, sc.CompetingOfferIDs[0]}
			if tt.sameOffer {
				offers[1] = sc.OfferID
			}

			results := make([]*commands.AcceptanceResult, 2)
			errs := make([]error, 2)
			var wg sync.WaitGroup
			for i := range offers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					results[i], errs[i] = uc.ConfirmAcceptance(context.Background(), offers[i], sc.TravelerID)
				}()
			}
			wg.Wait()

			require.NoError(t, errs[0])
			require.NoError(t, errs[1])
			outcomes := []commands.AcceptanceOutcome{results[0].Outcome, results[1].Outcome}
			assert.ElementsMatch(t, []commands.AcceptanceOutcome{commands.OutcomeAccepted, commands.OutcomeAlreadyAccepted}, outcomes)

			assert.Len(t, store.Bookings(), 1)
			assert.Len(t, pub.Named(event.NameBookingCreated), 1)
			for _, r := range results {
				if r.Outcome == commands.OutcomeAlreadyAccepted {
					assert.Empty(t, r.Notifications)
					assert.Nil(t, r.BookingID)
				}
			}
		})
	}
}
