package repository

import (
	"context"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ConflictWriteQueries interface {
	UpsertPendingConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPendingConflictParams) (sqlc.UpsertPendingConflictRow, error)
	GetConflictCaseForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ConflictCases, error)
	ResolveConflictCase(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveConflictCaseParams) error
}

type ConflictRepository struct {
	queries ConflictWriteQueries
	db      sqlc.DBTX
}

func NewConflictRepository(queries ConflictWriteQueries, db sqlc.DBTX) *ConflictRepository {
	return &ConflictRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertPending returns the id of the pending case for (natural key, reporter) and
// whether this call created it.
func (r *ConflictRepository) UpsertPending(ctx context.Context, tx sqlc.DBTX, c *conflict.Case) (uuid.UUID, bool, error) {
	params, err := converter.ConflictToUpsertParams(c)
	if err != nil {
		return uuid.Nil, false, err
	}
	row, err := r.queries.UpsertPendingConflict(ctx, tx, params)
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to upsert conflict case", err)
	}
	return row.ID, row.Created, nil
}

func (r *ConflictRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*conflict.Case, error) {
	row, err := r.queries.GetConflictCaseForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock conflict case", err)
	}
	return converter.ConflictFromRow(row), nil
}

func (r *ConflictRepository) SaveResolution(ctx context.Context, tx sqlc.DBTX, c *conflict.Case) error {
	if err := r.queries.ResolveConflictCase(ctx, tx, converter.ConflictToResolveParams(c)); err != nil {
		return infra.WrapRepoErr("failed to resolve conflict case", err)
	}
	return nil
}
