package repository

import (
	"context"

	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	MarkOfferAccepted(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	WithdrawCompetingOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.WithdrawCompetingOffersParams) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) MarkAccepted(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) error {
	affected, err := r.queries.MarkOfferAccepted(ctx, tx, offerID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark offer accepted", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindConflict, "offer is no longer open")
	}
	return nil
}

func (r *OfferRepository) WithdrawCompeting(ctx context.Context, tx sqlc.DBTX, travelRequestID, acceptedOfferID uuid.UUID) (int64, error) {
	affected, err := r.queries.WithdrawCompetingOffers(ctx, tx, sqlc.WithdrawCompetingOffersParams{
		TravelRequestID: travelRequestID,
		AcceptedOfferID: acceptedOfferID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to withdraw competing offers", err)
	}
	return affected, nil
}
