package readstore

import (
	"context"

	"travel-broker/internal/infra"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/pkg/pgconv"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindContact(ctx context.Context, id uuid.UUID) (*shared.Contact, error) {
	user, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &shared.Contact{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		ChatAddress: pgconv.StringFromPgtype(user.ChatAddress),
	}, nil
}
