package repository

import (
	"context"

	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TravelRequestWriteQueries interface {
	MarkTravelRequestBooked(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type TravelRequestRepository struct {
	queries TravelRequestWriteQueries
	db      sqlc.DBTX
}

func NewTravelRequestRepository(queries TravelRequestWriteQueries, db sqlc.DBTX) *TravelRequestRepository {
	return &TravelRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TravelRequestRepository) MarkBooked(ctx context.Context, tx sqlc.DBTX, travelRequestID uuid.UUID) error {
	affected, err := r.queries.MarkTravelRequestBooked(ctx, tx, travelRequestID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark travel request booked", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindConflict, "travel request already booked")
	}
	return nil
}
