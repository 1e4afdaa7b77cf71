//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-broker/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var legal = map[booking.Status][]booking.Status{
	booking.StatusCreated:                    {booking.StatusAwaitingAgencyConfirmation},
	booking.StatusAwaitingAgencyConfirmation: {booking.StatusAgencyConfirmed, booking.StatusRejectedByAgency, booking.StatusExpired, booking.StatusCancelled},
	booking.StatusAgencyConfirmed:            {booking.StatusManagerVerified, booking.StatusCancelled},
	booking.StatusManagerVerified:            {booking.StatusMeetingScheduled, booking.StatusCancelled},
	booking.StatusMeetingScheduled:           {booking.StatusPaymentPending, booking.StatusCancelled},
	booking.StatusPaymentPending:             {booking.StatusPaid, booking.StatusCancelled},
	booking.StatusPaid:                       {booking.StatusInProgress, booking.StatusCancelled},
	booking.StatusInProgress:                 {booking.StatusCompleted, booking.StatusCancelled},
}

func isLegal(from, to booking.Status) bool {
	for _, s := range legal[from] {
		if s == to {
			return true
		}
	}
	return false
}

func TestStatus_CanTransitionTo_AllPairs(t *testing.T) {
	for _, from := range booking.AllStatuses() {
		for _, to := range booking.AllStatuses() {
			assert.Equal(t, isLegal(from, to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []booking.Status{
		booking.StatusCompleted,
		booking.StatusCancelled,
		booking.StatusExpired,
		booking.StatusRejectedByAgency,
	}
	for _, s := range booking.AllStatuses() {
		want := false
		for _, ts := range terminal {
			if ts == s {
				want = true
			}
		}
		assert.Equal(t, want, s.IsTerminal(), s.String())
		if want {
			assert.Empty(t, s.Next())
		}
	}
	assert.False(t, booking.Status("BOGUS").IsTerminal())
}

func TestBooking_TransitionTo(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dest := "  Lisbon "

	t.Run("new booking starts CREATED with normalized snapshot", func(t *testing.T) {
		b, err := booking.NewBooking(booking.Snapshot{
			TravelRequestID: uuid.New(),
			OfferID:         uuid.New(),
			UserID:          uuid.New(),
			AgencyID:        uuid.New(),
			AgencyName:      "TravelCo",
			TotalPriceMinor: 150000,
			Currency:        "usd",
			Destination:     &dest,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCreated, b.Status())
		assert.Equal(t, "USD", b.Currency())
		require.NotNil(t, b.Destination())
		assert.Equal(t, "Lisbon", *b.Destination())
		assert.Len(t, b.ShortID(), 8)
	})

	t.Run("invalid snapshot", func(t *testing.T) {
		_, err := booking.NewBooking(booking.Snapshot{TotalPriceMinor: -1, Currency: "USD"}, now)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
		_, err = booking.NewBooking(booking.Snapshot{TotalPriceMinor: 1, Currency: " "}, now)
		require.ErrorIs(t, err, booking.ErrMissingCurrency)
	})

	t.Run("illegal transition leaves status unchanged", func(t *testing.T) {
		b, err := booking.NewBooking(booking.Snapshot{TotalPriceMinor: 1, Currency: "EUR"}, now)
		require.NoError(t, err)

		err = b.TransitionTo(booking.StatusPaid, now.Add(time.Minute))
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCreated, b.Status())
		assert.Equal(t, now, b.UpdatedAt())

		require.NoError(t, b.TransitionTo(booking.StatusAwaitingAgencyConfirmation, now.Add(time.Minute)))
		assert.Equal(t, booking.StatusAwaitingAgencyConfirmation, b.Status())
		assert.Equal(t, now.Add(time.Minute), b.UpdatedAt())
	})

	t.Run("reconstruct rejects unknown status", func(t *testing.T) {
		_, err := booking.Reconstruct(uuid.New(), booking.Snapshot{}, booking.Status("NOPE"), now, now)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
