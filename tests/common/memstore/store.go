//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are fully serialized and enforce the same uniqueness rules as the schema.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"
	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/infra/uow"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type agency struct {
	name         string
	groupAddress string
}

type bookingRow struct {
	id        uuid.UUID
	snap      booking.Snapshot
	status    booking.Status
	createdAt time.Time
	updatedAt time.Time
}

type state struct {
	users    map[uuid.UUID]shared.Contact
	agencies map[uuid.UUID]agency
	requests map[uuid.UUID]travelrequest.TravelRequest
	offers   map[uuid.UUID]offer.Offer
	bookings map[uuid.UUID]bookingRow
}

func (s *state) clone() *state {
	return &state{
		users:    maps.Clone(s.users),
		agencies: maps.Clone(s.agencies),
		requests: maps.Clone(s.requests),
		offers:   maps.Clone(s.offers),
		bookings: maps.Clone(s.bookings),
	}
}

type Store struct {
	mu    sync.Mutex
	state *state

	hookMu          sync.Mutex
	onOfferRead     func()
	statusUpdateErr error
	commits         int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: &state{
		users:    map[uuid.UUID]shared.Contact{},
		agencies: map[uuid.UUID]agency{},
		requests: map[uuid.UUID]travelrequest.TravelRequest{},
		offers:   map[uuid.UUID]offer.Offer{},
		bookings: map[uuid.UUID]bookingRow{},
	}}
}

// Within runs fn against a private copy of the store and swaps it in only on success.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{store: s, st: staged}); err != nil {
		return uow.AsConflict(err)
	}
	s.state = staged
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// OnOfferContextRead installs a hook run after every out-of-transaction offer read.
func (s *Store) OnOfferContextRead(fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.onOfferRead = fn
}

// FailStatusUpdates makes every booking status write fail with err; nil restores normal behavior.
func (s *Store) FailStatusUpdates(err error) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.statusUpdateErr = err
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// ---------------------------------------------------------------------------
// Seeding and inspection

func (s *Store) AddUser(name, chatAddress string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.users[id] = shared.Contact{UserID: id, DisplayName: name, ChatAddress: chatAddress}
	return id
}

func (s *Store) AddAgency(name, groupAddress string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.agencies[id] = agency{name: name, groupAddress: groupAddress}
	return id
}

func (s *Store) AddTravelRequest(tr travelrequest.TravelRequest) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	s.state.requests[tr.ID] = tr
	return tr.ID
}

func (s *Store) AddOffer(o offer.Offer) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.state.offers[o.ID] = o
	return o.ID
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = rowFromBooking(b)
}

func (s *Store) Offer(id uuid.UUID) offer.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.offers[id]
}

func (s *Store) TravelRequest(id uuid.UUID) travelrequest.TravelRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.requests[id]
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.state.bookings[id]
	if !ok {
		return nil
	}
	return row.toBooking()
}

// Bookings returns all bookings ordered by creation time.
func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.state.bookings))
	slices.SortFunc(rows, func(a, b bookingRow) int { return a.createdAt.Compare(b.createdAt) })
	out := make([]*booking.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toBooking())
	}
	return out
}

func rowFromBooking(b *booking.Booking) bookingRow {
	return bookingRow{
		id: b.ID(),
		snap: booking.Snapshot{
			TravelRequestID: b.TravelRequestID(),
			OfferID:         b.OfferID(),
			UserID:          b.UserID(),
			AgencyID:        b.AgencyID(),
			AgencyName:      b.AgencyName(),
			TotalPriceMinor: b.TotalPriceMinor(),
			Currency:        b.Currency(),
			Destination:     b.Destination(),
		},
		status:    b.Status(),
		createdAt: b.CreatedAt(),
		updatedAt: b.UpdatedAt(),
	}
}

func (r bookingRow) toBooking() *booking.Booking {
	b, err := booking.Reconstruct(r.id, r.snap, r.status, r.createdAt, r.updatedAt)
	if err != nil {
		panic(err)
	}
	return b
}

// ---------------------------------------------------------------------------
// Reads

type lockedReads struct {
	store *Store
}

func (r *lockedReads) OfferContextByID(ctx context.Context, offerID uuid.UUID) (*shared.OfferContext, error) {
	r.store.mu.Lock()
	oc, err := readOfferContext(r.store.state, offerID)
	r.store.mu.Unlock()

	r.store.hookMu.Lock()
	hook := r.store.onOfferRead
	r.store.hookMu.Unlock()
	if hook != nil {
		hook()
	}
	return oc, err
}

func (r *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return readBooking(r.store.state, id)
}

func (r *lockedReads) UserContact(ctx context.Context, userID uuid.UUID) (*shared.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return readContact(r.store.state, userID)
}

func (r *lockedReads) StaleBookings(ctx context.Context, status booking.Status, createdBefore time.Time, limit int32) ([]*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return readStale(r.store.state, status, createdBefore, limit), nil
}

type txReads struct {
	st *state
}

func (r *txReads) OfferContextByID(ctx context.Context, offerID uuid.UUID) (*shared.OfferContext, error) {
	return readOfferContext(r.st, offerID)
}

func (r *txReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return readBooking(r.st, id)
}

func (r *txReads) UserContact(ctx context.Context, userID uuid.UUID) (*shared.Contact, error) {
	return readContact(r.st, userID)
}

func (r *txReads) StaleBookings(ctx context.Context, status booking.Status, createdBefore time.Time, limit int32) ([]*booking.Booking, error) {
	return readStale(r.st, status, createdBefore, limit), nil
}

func readOfferContext(st *state, offerID uuid.UUID) (*shared.OfferContext, error) {
	o, ok := st.offers[offerID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "offer not found")
	}
	tr, ok := st.requests[o.TravelRequestID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "travel request not found")
	}
	ag := st.agencies[o.AgencyID]

	oc := &shared.OfferContext{
		Offer:              o,
		TravelRequest:      tr,
		AgencyName:         ag.name,
		AgencyGroupAddress: ag.groupAddress,
	}
	if o.AssignedAgentID != nil {
		if c, ok := st.users[*o.AssignedAgentID]; ok {
			oc.Agent = &c
		} else {
			oc.Agent = &shared.Contact{UserID: *o.AssignedAgentID}
		}
	}
	return oc, nil
}

func readBooking(st *state, id uuid.UUID) (*booking.Booking, error) {
	row, ok := st.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return row.toBooking(), nil
}

func readContact(st *state, userID uuid.UUID) (*shared.Contact, error) {
	c, ok := st.users[userID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return &c, nil
}

func readStale(st *state, status booking.Status, createdBefore time.Time, limit int32) []*booking.Booking {
	var rows []bookingRow
	for _, r := range st.bookings {
		if r.status == status && r.createdAt.Before(createdBefore) {
			rows = append(rows, r)
		}
	}
	slices.SortFunc(rows, func(a, b bookingRow) int { return a.createdAt.Compare(b.createdAt) })
	if int32(len(rows)) > limit {
		rows = rows[:limit]
	}
	out := make([]*booking.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toBooking())
	}
	return out
}

// ---------------------------------------------------------------------------
// Transaction

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Bookings() shared.BookingRepository             { return &bookingRepo{t} }
func (t *memTx) Offers() shared.OfferRepository                 { return &offerRepo{t} }
func (t *memTx) TravelRequests() shared.TravelRequestRepository { return &requestRepo{t} }
func (t *memTx) Reads() shared.CommandReads                     { return &txReads{st: t.st} }
func (t *memTx) DB() sqlc.DBTX                                  { return nil }

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(ctx context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	for _, existing := range r.tx.st.bookings {
		if existing.snap.OfferID == b.OfferID() || existing.snap.TravelRequestID == b.TravelRequestID() {
			return uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "booking already exists")
		}
	}
	r.tx.st.bookings[b.ID()] = rowFromBooking(b)
	return b.ID(), nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, _ sqlc.DBTX, id uuid.UUID, from, to booking.Status, at time.Time) error {
	r.tx.store.hookMu.Lock()
	injected := r.tx.store.statusUpdateErr
	r.tx.store.hookMu.Unlock()
	if injected != nil {
		return injected
	}

	row, ok := r.tx.st.bookings[id]
	if !ok || row.status != from {
		return infra.NewRepoErr(infra.KindConflict, "booking status changed concurrently")
	}
	row.status = to
	row.updatedAt = at
	r.tx.st.bookings[id] = row
	return nil
}

type offerRepo struct{ tx *memTx }

func (r *offerRepo) MarkAccepted(ctx context.Context, _ sqlc.DBTX, offerID uuid.UUID) error {
	o, ok := r.tx.st.offers[offerID]
	if !ok || !o.Status.IsOpen() {
		return infra.NewRepoErr(infra.KindConflict, "offer is no longer open")
	}
	for _, other := range r.tx.st.offers {
		if other.TravelRequestID == o.TravelRequestID && other.Status == offer.StatusAccepted {
			return infra.NewRepoErr(infra.KindDuplicateKey, "travel request already has an accepted offer")
		}
	}
	o.Status = offer.StatusAccepted
	r.tx.st.offers[offerID] = o
	return nil
}

func (r *offerRepo) WithdrawCompeting(ctx context.Context, _ sqlc.DBTX, travelRequestID, acceptedOfferID uuid.UUID) (int64, error) {
	var n int64
	for id, o := range r.tx.st.offers {
		if o.TravelRequestID == travelRequestID && id != acceptedOfferID && o.Status.IsOpen() {
			o.Status = offer.StatusWithdrawn
			r.tx.st.offers[id] = o
			n++
		}
	}
	return n, nil
}

type requestRepo struct{ tx *memTx }

func (r *requestRepo) MarkBooked(ctx context.Context, _ sqlc.DBTX, travelRequestID uuid.UUID) error {
	tr, ok := r.tx.st.requests[travelRequestID]
	if !ok || tr.Status.IsBooked() {
		return infra.NewRepoErr(infra.KindConflict, "travel request already booked")
	}
	tr.Status = travelrequest.StatusBooked
	r.tx.st.requests[travelRequestID] = tr
	return nil
}
