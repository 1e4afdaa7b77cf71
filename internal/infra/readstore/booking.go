package readstore

import (
	"context"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/infra"
	"travel-broker/internal/infra/repository/converter"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/pkg/pgconv"
	"travel-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByStatusCreatedBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByStatusCreatedBeforeParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return rowToBookingView(row), nil
}

// FindEntityByID loads the booking as a domain entity for the write side.
func (r *BookingReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingReadStore) FindByStatusCreatedBefore(ctx context.Context, status booking.Status, before time.Time, limit int32) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByStatusCreatedBefore(ctx, r.db, sqlc.ListBookingsByStatusCreatedBeforeParams{
		Status:        status.String(),
		CreatedBefore: pgconv.TimeToPgtype(before),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *BookingReadStore) get(ctx context.Context, id uuid.UUID) (sqlc.Bookings, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Bookings{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return sqlc.Bookings{}, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return row, nil
}

func rowToBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		ShortID:         booking.ShortID(row.ID),
		TravelRequestID: row.TravelRequestID,
		OfferID:         row.OfferID,
		UserID:          row.UserID,
		AgencyID:        row.AgencyID,
		AgencyName:      row.AgencyName,
		Status:          row.Status,
		TotalPriceMinor: row.TotalPriceMinor,
		Currency:        row.Currency,
		Destination:     pgconv.StringPtrFromPgtype(row.Destination),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
