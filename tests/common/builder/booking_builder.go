//go:build unit || e2e

package builder

import (
	"time"

	"travel-broker/internal/domain/booking"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	TravelRequestID uuid.UUID
	OfferID         uuid.UUID
	UserID          uuid.UUID
	AgencyID        uuid.UUID
	AgencyName      string
	Status          booking.Status
	TotalPriceMinor int64
	Currency        string
	Destination     *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	dest := "Bali"
	return &BookingBuilder{
		ID:              uuid.New(),
		TravelRequestID: uuid.New(),
		OfferID:         uuid.New(),
		UserID:          uuid.New(),
		AgencyID:        uuid.New(),
		AgencyName:      "TravelCo",
		Status:          booking.StatusCreated,
		TotalPriceMinor: 150000,
		Currency:        "USD",
		Destination:     &dest,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) snapshot() booking.Snapshot {
	return booking.Snapshot{
		TravelRequestID: b.TravelRequestID,
		OfferID:         b.OfferID,
		UserID:          b.UserID,
		AgencyID:        b.AgencyID,
		AgencyName:      b.AgencyName,
		TotalPriceMinor: b.TotalPriceMinor,
		Currency:        b.Currency,
		Destination:     b.Destination,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	out, err := booking.Reconstruct(b.ID, b.snapshot(), b.Status, b.CreatedAt, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return out
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	var dest pgtype.Text
	if b.Destination != nil {
		dest = pgtype.Text{String: *b.Destination, Valid: true}
	}
	return sqlc.Bookings{
		ID:              b.ID,
		TravelRequestID: b.TravelRequestID,
		OfferID:         b.OfferID,
		UserID:          b.UserID,
		AgencyID:        b.AgencyID,
		AgencyName:      b.AgencyName,
		Status:          b.Status.String(),
		TotalPriceMinor: b.TotalPriceMinor,
		Currency:        b.Currency,
		Destination:     dest,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ShortID:         booking.ShortID(b.ID),
		TravelRequestID: b.TravelRequestID,
		OfferID:         b.OfferID,
		UserID:          b.UserID,
		AgencyID:        b.AgencyID,
		AgencyName:      b.AgencyName,
		Status:          b.Status.String(),
		TotalPriceMinor: b.TotalPriceMinor,
		Currency:        b.Currency,
		Destination:     b.Destination,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithOfferID(id uuid.UUID) *BookingBuilder {
	b.OfferID = id
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) WithoutDestination() *BookingBuilder {
	b.Destination = nil
	return b
}
