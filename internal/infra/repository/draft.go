package repository

import (
	"context"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type DraftWriteQueries interface {
	GetDraftForUpdate(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.Drafts, error)
	InsertDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDraftParams) error
	UpdateDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDraftParams) error
}

type DraftRepository struct {
	queries DraftWriteQueries
	db      sqlc.DBTX
}

func NewDraftRepository(queries DraftWriteQueries, db sqlc.DBTX) *DraftRepository {
	return &DraftRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DraftRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*draft.Draft, error) {
	row, err := r.queries.GetDraftForUpdate(ctx, tx, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock draft", err)
	}
	return converter.DraftFromRow(row), nil
}

func (r *DraftRepository) Create(ctx context.Context, tx sqlc.DBTX, d *draft.Draft) error {
	if err := r.queries.InsertDraft(ctx, tx, converter.DraftToInsertParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create draft", err)
	}
	return nil
}

func (r *DraftRepository) Save(ctx context.Context, tx sqlc.DBTX, d *draft.Draft) error {
	if err := r.queries.UpdateDraft(ctx, tx, converter.DraftToUpdateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to update draft", err)
	}
	return nil
}
