package shared

import (
	"context"
	"time"

	"travel-broker/internal/domain/booking"
	sqlc "travel-broker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic.
	// Constraint violations surface as *ConflictError.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Offers() OfferRepository
	TravelRequests() TravelRequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	OfferContextByID(ctx context.Context, offerID uuid.UUID) (*OfferContext, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UserContact(ctx context.Context, userID uuid.UUID) (*Contact, error)
	StaleBookings(ctx context.Context, status booking.Status, createdBefore time.Time, limit int32) ([]*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus writes only if the stored status still equals from.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to booking.Status, at time.Time) error
}

type OfferRepository interface {
	// MarkAccepted fails with a conflict when the offer is no longer open.
	MarkAccepted(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) error
	WithdrawCompeting(ctx context.Context, tx sqlc.DBTX, travelRequestID, acceptedOfferID uuid.UUID) (int64, error)
}

type TravelRequestRepository interface {
	// MarkBooked fails with a conflict when the request is already booked.
	MarkBooked(ctx context.Context, tx sqlc.DBTX, travelRequestID uuid.UUID) error
}
