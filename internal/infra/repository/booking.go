package repository

import (
	"context"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/infra"
	"travel-broker/internal/infra/repository/converter"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToInfra(b)

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to booking.Status, at time.Time) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:         id,
		FromStatus: from.String(),
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindConflict, "booking status changed concurrently")
	}

	return nil
}
