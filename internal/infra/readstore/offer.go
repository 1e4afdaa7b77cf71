package readstore

import (
	"context"

	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"
	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/pkg/pgconv"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferReadQueries interface {
	GetOfferContext(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOfferContextRow, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) FindContext(ctx context.Context, offerID uuid.UUID) (*shared.OfferContext, error) {
	row, err := r.queries.GetOfferContext(ctx, r.db, offerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load offer context", err)
	}
	return rowToOfferContext(row), nil
}

func rowToOfferContext(row sqlc.GetOfferContextRow) *shared.OfferContext {
	oc := &shared.OfferContext{
		Offer: offer.Offer{
			ID:              row.ID,
			TravelRequestID: row.TravelRequestID,
			AgencyID:        row.AgencyID,
			AssignedAgentID: pgconv.UUIDPtrFromPgtype(row.AssignedAgentID),
			TotalPriceMinor: row.TotalPriceMinor,
			Currency:        row.Currency,
			Destination:     pgconv.StringPtrFromPgtype(row.Destination),
			Status:          offer.Status(row.Status),
		},
		TravelRequest: travelrequest.TravelRequest{
			ID:          row.TravelRequestID,
			UserID:      row.RequestUserID,
			Destination: pgconv.StringPtrFromPgtype(row.RequestDestination),
			Status:      travelrequest.Status(row.RequestStatus),
		},
		AgencyName:         row.AgencyName,
		AgencyGroupAddress: pgconv.StringFromPgtype(row.AgencyGroupChatAddress),
	}

	if agentID := oc.Offer.AssignedAgentID; agentID != nil {
		oc.Agent = &shared.Contact{
			UserID:      *agentID,
			DisplayName: pgconv.StringFromPgtype(row.AgentDisplayName),
			ChatAddress: pgconv.StringFromPgtype(row.AgentChatAddress),
		}
	}
	return oc
}
