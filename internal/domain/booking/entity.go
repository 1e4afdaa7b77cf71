package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrMissingCurrency   = errors.New("currency is required")
)

// Snapshot is the offer data frozen into a booking at acceptance time.
type Snapshot struct {
	TravelRequestID uuid.UUID
	OfferID         uuid.UUID
	UserID          uuid.UUID
	AgencyID        uuid.UUID
	AgencyName      string
	TotalPriceMinor int64
	Currency        string
	Destination     *string
}

type Booking struct {
	id              uuid.UUID
	travelRequestID uuid.UUID
	offerID         uuid.UUID
	userID          uuid.UUID
	agencyID        uuid.UUID
	agencyName      string
	status          Status
	totalPriceMinor int64
	currency        string
	destination     *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(snap Snapshot, now time.Time) (*Booking, error) {
	if snap.TotalPriceMinor < 0 {
		return nil, ErrNegativePrice
	}
	currency := strings.ToUpper(strings.TrimSpace(snap.Currency))
	if currency == "" {
		return nil, ErrMissingCurrency
	}

	var destination *string
	if snap.Destination != nil {
		d := strings.TrimSpace(*snap.Destination)
		if d != "" {
			destination = &d
		}
	}

	return &Booking{
		id:              uuid.New(),
		travelRequestID: snap.TravelRequestID,
		offerID:         snap.OfferID,
		userID:          snap.UserID,
		agencyID:        snap.AgencyID,
		agencyName:      snap.AgencyName,
		status:          StatusCreated,
		totalPriceMinor: snap.TotalPriceMinor,
		currency:        currency,
		destination:     destination,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	snap Snapshot,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &Booking{
		id:              id,
		travelRequestID: snap.TravelRequestID,
		offerID:         snap.OfferID,
		userID:          snap.UserID,
		agencyID:        snap.AgencyID,
		agencyName:      snap.AgencyName,
		status:          status,
		totalPriceMinor: snap.TotalPriceMinor,
		currency:        snap.Currency,
		destination:     snap.Destination,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// TransitionTo moves the booking to target if the transition table allows it.
// The booking is left untouched on error.
func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !b.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, target)
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) TravelRequestID() uuid.UUID { return b.travelRequestID }
func (b *Booking) OfferID() uuid.UUID         { return b.offerID }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) AgencyID() uuid.UUID        { return b.agencyID }
func (b *Booking) AgencyName() string         { return b.agencyName }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) TotalPriceMinor() int64     { return b.totalPriceMinor }
func (b *Booking) Currency() string           { return b.currency }
func (b *Booking) Destination() *string       { return b.destination }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func (b *Booking) IsTerminal() bool {
	return b.status.IsTerminal()
}

// ShortID is the first eight characters of the booking id, used in chat text.
func (b *Booking) ShortID() string {
	return ShortID(b.id)
}

func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}
