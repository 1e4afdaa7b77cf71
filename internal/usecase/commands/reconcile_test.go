//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/usecase/commands"
	"travel-broker/tests/common/builder"
	"travel-broker/tests/common/fakes"
	"travel-broker/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcileFixture struct {
	store  *memstore.Store
	sender *fakes.Sender
	clock  *clock.MockClock
	uc     commands.ReconcileCommands
}

func newReconcileFixture(cfg commands.ReconcileConfig) reconcileFixture {
	store := memstore.New()
	sender := &fakes.Sender{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	statuses := commands.NewBookingStatusUseCase(store, &fakes.Publisher{}, clk, logger)
	return reconcileFixture{
		store:  store,
		sender: sender,
		clock:  clk,
		uc:     commands.NewReconcileUseCase(store, statuses, sender, clk, logger, cfg),
	}
}

func TestReconcile_AdvancesOnlyStaleCreatedBookings(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: 10 * time.Minute})

	sc := builder.NewScenarioBuilder().WithGroupAddress("chat:group").Build(f.store)
	stale := builder.NewBookingBuilder().
		WithOfferID(sc.OfferID).
		WithCreatedAt(f.clock.Now().Add(-time.Hour)).
		BuildDomain()
	fresh := builder.NewBookingBuilder().
		WithCreatedAt(f.clock.Now().Add(-time.Minute)).
		BuildDomain()
	progressed := builder.NewBookingBuilder().
		WithStatus(booking.StatusAgencyConfirmed).
		WithCreatedAt(f.clock.Now().Add(-time.Hour)).
		BuildDomain()
	f.store.AddBooking(stale)
	f.store.AddBooking(fresh)
	f.store.AddBooking(progressed)

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, []uuid.UUID{stale.ID()}, report.Advanced)
	assert.Empty(t, report.Failed)
	assert.Equal(t, booking.StatusAwaitingAgencyConfirmation, f.store.Booking(stale.ID()).Status())
	assert.Equal(t, booking.StatusCreated, f.store.Booking(fresh.ID()).Status())
	assert.Equal(t, booking.StatusAgencyConfirmed, f.store.Booking(progressed.ID()).Status())

	calls := f.sender.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)
	assert.Equal(t, "chat:agent", calls[0][0].Address)
	assert.Equal(t, "chat:group", calls[0][1].Address)
}

func TestReconcile_SendsPerBooking(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: time.Minute})

	sc := builder.NewScenarioBuilder().Build(f.store)
	for range 2 {
		f.store.AddBooking(builder.NewBookingBuilder().
			WithOfferID(sc.OfferID).
			WithCreatedAt(f.clock.Now().Add(-time.Hour)).
			BuildDomain())
	}

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Len(t, report.Advanced, 2)
	require.Len(t, f.sender.Calls(), 2)
	for _, call := range f.sender.Calls() {
		require.Len(t, call, 1)
		assert.Equal(t, "chat:agent", call[0].Address)
	}
}

func TestReconcile_RespectsBatchSize(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: time.Minute, BatchSize: 2})
	for i := range 3 {
		f.store.AddBooking(builder.NewBookingBuilder().
			WithCreatedAt(f.clock.Now().Add(-time.Duration(i+1) * time.Hour)).
			BuildDomain())
	}

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Len(t, report.Advanced, 2)
}

func TestReconcile_RecordsFailures(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: time.Minute})
	b := builder.NewBookingBuilder().WithCreatedAt(f.clock.Now().Add(-time.Hour)).BuildDomain()
	f.store.AddBooking(b)
	f.store.FailStatusUpdates(errors.New("connection reset"))

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Advanced)
	assert.Equal(t, []uuid.UUID{b.ID()}, report.Failed)
	assert.Empty(t, f.sender.Calls())
	assert.Equal(t, booking.StatusCreated, f.store.Booking(b.ID()).Status())
}

func TestReconcile_SenderErrorIsNotFatal(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: time.Minute})
	f.sender.Err = errors.New("broker down")
	sc := builder.NewScenarioBuilder().Build(f.store)
	b := builder.NewBookingBuilder().
		WithOfferID(sc.OfferID).
		WithCreatedAt(f.clock.Now().Add(-time.Hour)).
		BuildDomain()
	f.store.AddBooking(b)

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID()}, report.Advanced)
}

func TestReconcile_NothingStale(t *testing.T) {
	f := newReconcileFixture(commands.ReconcileConfig{StaleAfter: time.Minute})

	report, err := f.uc.ReconcileStuckBookings(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Scanned)
	assert.Empty(t, f.sender.Calls())
}
