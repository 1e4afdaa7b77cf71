//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"travel-broker/internal/handler/dto/response"
	"travel-broker/tests/common/dbtest"
	"travel-broker/tests/common/httptest"
	"travel-broker/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	acceptanceURL = "/api/offers/%s/acceptance"
	bookingURL    = "/api/bookings/%s"
	statusURL     = "/api/bookings/%s/status"
	reconcileURL  = "/api/admin/reconcile"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type marketplace struct {
	travelerID uuid.UUID
	agentID    uuid.UUID
	agencyID   uuid.UUID
	requestID  uuid.UUID
	offerID    uuid.UUID
	rivalID    uuid.UUID
}

// seedMarketplace creates one traveler request with two competing offers.
func (s *BookingSuite) seedMarketplace(t *testing.T) marketplace {
	t.Helper()

	m := marketplace{}
	m.travelerID = dbtest.CreateTestUser(t, s.DB, "Ann Traveler", "chat:traveler")
	m.agentID = dbtest.CreateTestUser(t, s.DB, "Bob Agent", "chat:agent")
	m.agencyID = dbtest.CreateTestAgency(t, s.DB, "TravelCo", "chat:travelco-group")
	rivalAgency := dbtest.CreateTestAgency(t, s.DB, "RivalTours", "chat:rival-group")
	m.requestID = dbtest.CreateTestTravelRequest(t, s.DB, m.travelerID, "Lisbon")

	agentID := m.agentID
	m.offerID = dbtest.CreateTestOffer(t, s.DB, dbtest.OfferParams{
		TravelRequestID: m.requestID,
		AgencyID:        m.agencyID,
		AgentID:         &agentID,
		TotalPriceMinor: 125000,
		Currency:        "USD",
	})
	m.rivalID = dbtest.CreateTestOffer(t, s.DB, dbtest.OfferParams{
		TravelRequestID: m.requestID,
		AgencyID:        rivalAgency,
		TotalPriceMinor: 99000,
		Currency:        "USD",
		Status:          "VIEWED",
	})
	return m
}

func (s *BookingSuite) accept(t *testing.T, offerID, actorID uuid.UUID) (int, response.AcceptanceResponse) {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptanceURL, offerID), nil, actorID.String())
	var res response.AcceptanceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, res
}

// =============================================================================
// TestAcceptOffer - offer acceptance workflow
// =============================================================================

func (s *BookingSuite) TestAcceptOffer() {
	s.Run("Normal case: confirmation prompt offers confirm and cancel", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(acceptanceURL, m.offerID), nil, m.travelerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var res response.ConfirmationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, "ready_to_confirm", res.Outcome)
		require.Len(t, res.Choices, 2)
		assert.Equal(t, fmt.Sprintf("offer:%s:confirm", m.offerID), res.Choices[0].Payload)
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Normal case: accepting creates a booking and withdraws competing offers", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, res := s.accept(t, m.offerID, m.travelerID)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "accepted", res.Outcome)
		require.NotNil(t, res.BookingID)
		assert.False(t, res.NeedsReconciliation)
		assert.Contains(t, res.Message, "TravelCo")
		assert.Contains(t, res.Message, "1,250 USD")

		assert.Equal(t, "ACCEPTED", dbtest.QueryString(t, s.DB, "SELECT status FROM offers WHERE id = $1", m.offerID))
		assert.Equal(t, "WITHDRAWN", dbtest.QueryString(t, s.DB, "SELECT status FROM offers WHERE id = $1", m.rivalID))
		assert.Equal(t, "BOOKED", dbtest.QueryString(t, s.DB, "SELECT status FROM travel_requests WHERE id = $1", m.requestID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, *res.BookingID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var booking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booking))

		want := response.BookingResponse{
			ID:              *res.BookingID,
			TravelRequestID: m.requestID,
			OfferID:         m.offerID,
			UserID:          m.travelerID,
			AgencyID:        m.agencyID,
			AgencyName:      "TravelCo",
			Status:          "AWAITING_AGENCY_CONFIRMATION",
			TotalPriceMinor: 125000,
			Currency:        "USD",
		}
		diff := cmp.Diff(want, booking, cmpopts.IgnoreFields(response.BookingResponse{}, "ShortID", "Destination", "CreatedAt", "UpdatedAt"))
		assert.Empty(t, diff)
		require.NotNil(t, booking.Destination)
		assert.Equal(t, "Lisbon", *booking.Destination)
	})

	s.Run("Normal case: notifications already sent by the event handler are not repeated", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, res := s.accept(t, m.offerID, m.travelerID)
		require.Equal(t, http.StatusCreated, code)
		require.NotEmpty(t, res.Notifications)

		byKey := map[string]response.NotificationResponse{}
		for _, n := range res.Notifications {
			assert.True(t, n.Delivered || n.Deduplicated, "notification %s neither delivered nor deduplicated", n.TemplateKey)
			byKey[n.TemplateKey+"|"+n.Address] = n
		}

		created, ok := byKey["booking.created.agent|chat:agent"]
		require.True(t, ok)
		assert.True(t, created.Deduplicated)

		awaiting, ok := byKey["booking.status.awaiting_agency_confirmation.agent|chat:agent"]
		require.True(t, ok)
		assert.True(t, awaiting.Delivered)
		assert.False(t, awaiting.Deduplicated)
		require.Len(t, awaiting.Actions, 2)
	})

	s.Run("Error case: only the request owner may accept", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, res := s.accept(t, m.offerID, m.agentID)
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "not_authorized", res.Outcome)
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Error case: unknown offer", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, res := s.accept(t, uuid.New(), m.travelerID)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "offer_not_found", res.Outcome)
	})

	s.Run("Error case: second acceptance on a booked request is rejected", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, _ := s.accept(t, m.offerID, m.travelerID)
		require.Equal(t, http.StatusCreated, code)

		code, res := s.accept(t, m.rivalID, m.travelerID)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "already_booked", res.Outcome)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Error case: missing acting user", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptanceURL, m.offerID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Acting user required")
	})

	s.Run("Concurrency: racing acceptances produce exactly one booking", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		const attempts = 6
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			offerID := m.offerID
			if i%2 == 1 {
				offerID = m.rivalID
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptanceURL, offerID), nil, m.travelerID.String())
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", ""))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "offers", "status = 'ACCEPTED'"))
	})
}

// =============================================================================
// TestTransitionBooking - booking status changes
// =============================================================================

func (s *BookingSuite) TestTransitionBooking() {
	patch := func(t *testing.T, bookingID, actorID uuid.UUID, status string) (int, response.TransitionResponse) {
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, bookingID),
			map[string]string{"status": status, "reason": "e2e"}, actorID.String())
		var res response.TransitionResponse
		if w.Code == http.StatusOK {
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		}
		return w.Code, res
	}

	s.Run("Normal case: agency confirms and the traveler is told", func() {
		t := s.T()
		m := s.seedMarketplace(t)
		_, accepted := s.accept(t, m.offerID, m.travelerID)
		require.NotNil(t, accepted.BookingID)

		code, res := patch(t, *accepted.BookingID, m.agentID, "agency_confirmed")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "AGENCY_CONFIRMED", res.Booking.Status)
		require.Len(t, res.Notifications, 1)
		assert.Equal(t, "chat:traveler", res.Notifications[0].Address)
		assert.Contains(t, res.Notifications[0].Text, "TravelCo confirmed your booking")
	})

	s.Run("Error case: transitions outside the table are rejected", func() {
		t := s.T()
		m := s.seedMarketplace(t)
		_, accepted := s.accept(t, m.offerID, m.travelerID)
		require.NotNil(t, accepted.BookingID)

		code, _ := patch(t, *accepted.BookingID, m.agentID, "MANAGER_VERIFIED")
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, "AWAITING_AGENCY_CONFIRMATION",
			dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", *accepted.BookingID))
	})

	s.Run("Error case: terminal bookings stay terminal", func() {
		t := s.T()
		m := s.seedMarketplace(t)
		_, accepted := s.accept(t, m.offerID, m.travelerID)
		require.NotNil(t, accepted.BookingID)

		code, _ := patch(t, *accepted.BookingID, m.agentID, "REJECTED_BY_AGENCY")
		require.Equal(t, http.StatusOK, code)
		code, _ = patch(t, *accepted.BookingID, m.agentID, "AGENCY_CONFIRMED")
		assert.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: unknown status and unknown booking", func() {
		t := s.T()
		m := s.seedMarketplace(t)

		code, _ := patch(t, uuid.New(), m.agentID, "BOGUS")
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = patch(t, uuid.New(), m.agentID, "CANCELLED")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

// =============================================================================
// TestReconcile - stuck booking recovery
// =============================================================================

func (s *BookingSuite) TestReconcile() {
	s.Run("Normal case: a booking left in CREATED is advanced", func() {
		t := s.T()
		m := s.seedMarketplace(t)
		_, accepted := s.accept(t, m.offerID, m.travelerID)
		require.NotNil(t, accepted.BookingID)

		dbtest.SetBookingStatus(t, s.DB, *accepted.BookingID, "CREATED")
		dbtest.BackdateBooking(t, s.DB, *accepted.BookingID, time.Hour)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileURL, nil, m.agentID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var res response.ReconcileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, 1, res.Scanned)
		assert.Equal(t, []uuid.UUID{*accepted.BookingID}, res.Advanced)
		assert.Empty(t, res.Failed)

		assert.Equal(t, "AWAITING_AGENCY_CONFIRMATION",
			dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", *accepted.BookingID))
	})

	s.Run("Normal case: fresh CREATED bookings are left alone", func() {
		t := s.T()
		m := s.seedMarketplace(t)
		_, accepted := s.accept(t, m.offerID, m.travelerID)
		require.NotNil(t, accepted.BookingID)
		dbtest.SetBookingStatus(t, s.DB, *accepted.BookingID, "CREATED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileURL, nil, m.agentID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var res response.ReconcileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, 0, res.Scanned)
	})
}
