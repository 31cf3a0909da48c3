package repository

import (
	"context"
	"time"

	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
	"fieldsync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	InsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Save is first-writer-wins: a key already on record is left as is.
func (r *IdempotencyRepository) Save(ctx context.Context, tx sqlc.DBTX, rec shared.IdempotencyRecord) (bool, error) {
	params := sqlc.InsertIdempotencyKeyParams{
		Key:            rec.Key,
		UserID:         pgconv.UUIDPtrToPgtype(rec.UserID),
		Endpoint:       rec.Endpoint,
		RequestHash:    rec.RequestHash,
		ResponseStatus: int32(rec.ResponseStatus), // #nosec G115 -- HTTP status codes fit in int32
		ResponseBody:   rec.ResponseBody,
		CreatedAt:      pgconv.TimeToPgtype(rec.CreatedAt),
		ExpiresAt:      pgconv.TimeToPgtype(rec.ExpiresAt),
	}

	n, err := r.queries.InsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to save idempotency key", err)
	}

	return n > 0, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
