package readstore

import (
	"context"
	"time"

	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get treats expired keys as absent.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, now time.Time) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key: key,
		Now: pgconv.TimeToPgtype(now),
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:            row.Key,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		Endpoint:       row.Endpoint,
		RequestHash:    row.RequestHash,
		ResponseStatus: int(row.ResponseStatus),
		ResponseBody:   row.ResponseBody,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
