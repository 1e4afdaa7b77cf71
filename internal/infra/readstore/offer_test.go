//go:build unit

package readstore

import (
	"context"
	"testing"

	"travel-broker/internal/domain/offer"
	"travel-broker/internal/domain/travelrequest"
	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOfferReadQueries struct {
	mock.Mock
}

func (m *MockOfferReadQueries) GetOfferContext(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOfferContextRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetOfferContextRow), args.Error(1)
}

func TestFindContext(t *testing.T) {
	offerID := uuid.New()
	agentID := uuid.New()
	requestID := uuid.New()
	travelerID := uuid.New()

	t.Run("success - assigned agent", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("GetOfferContext", mock.Anything, mock.Anything, offerID).Return(sqlc.GetOfferContextRow{
			ID:                     offerID,
			TravelRequestID:        requestID,
			AssignedAgentID:        pgtype.UUID{Bytes: agentID, Valid: true},
			TotalPriceMinor:        150000,
			Currency:               "USD",
			Status:                 "SUBMITTED",
			RequestUserID:          travelerID,
			RequestDestination:     pgtype.Text{String: "Bali", Valid: true},
			RequestStatus:          "OFFERS_RECEIVED",
			AgencyName:             "TravelCo",
			AgencyGroupChatAddress: pgtype.Text{String: "chat:group", Valid: true},
			AgentDisplayName:       pgtype.Text{String: "Agent Smith", Valid: true},
			AgentChatAddress:       pgtype.Text{String: "chat:agent", Valid: true},
		}, nil)

		oc, err := NewOfferReadStore(mockQueries, nil).FindContext(context.Background(), offerID)

		require.NoError(t, err)
		assert.Equal(t, offer.StatusSubmitted, oc.Offer.Status)
		assert.Equal(t, travelrequest.StatusOffersReceived, oc.TravelRequest.Status)
		assert.Equal(t, travelerID, oc.TravelRequest.UserID)
		assert.Equal(t, "Bali", *oc.TravelRequest.Destination)
		assert.Nil(t, oc.Offer.Destination)
		assert.Equal(t, "chat:group", oc.AgencyGroupAddress)
		require.NotNil(t, oc.Agent)
		assert.Equal(t, agentID, oc.Agent.UserID)
		assert.Equal(t, "chat:agent", oc.Agent.ChatAddress)
	})

	t.Run("success - no agent assigned", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("GetOfferContext", mock.Anything, mock.Anything, offerID).Return(sqlc.GetOfferContextRow{
			ID:            offerID,
			Status:        "VIEWED",
			RequestStatus: "OPEN",
		}, nil)

		oc, err := NewOfferReadStore(mockQueries, nil).FindContext(context.Background(), offerID)

		require.NoError(t, err)
		assert.Nil(t, oc.Agent)
		assert.Empty(t, oc.AgencyGroupAddress)
	})

	t.Run("error - not found", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("GetOfferContext", mock.Anything, mock.Anything, offerID).Return(sqlc.GetOfferContextRow{}, pgx.ErrNoRows)

		oc, err := NewOfferReadStore(mockQueries, nil).FindContext(context.Background(), offerID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, oc)
	})
}
