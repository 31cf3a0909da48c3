package repository

import (
	"context"
	"time"

	"fieldsync/internal/domain/situation"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SituationWriteQueries interface {
	InsertSituation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSituationParams) error
	InsertSituationDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSituationDetailParams) error
	GetSituationByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Situations, error)
	GetSituationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Situations, error)
	UpdateSituationFields(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSituationFieldsParams) error
}

type SituationRepository struct {
	queries SituationWriteQueries
	db      sqlc.DBTX
}

func NewSituationRepository(queries SituationWriteQueries, db sqlc.DBTX) *SituationRepository {
	return &SituationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SituationRepository) Create(ctx context.Context, tx sqlc.DBTX, s *situation.Situation) error {
	if err := r.queries.InsertSituation(ctx, tx, converter.SituationToInsertParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create situation", err)
	}
	return nil
}

func (r *SituationRepository) CreateDetail(ctx context.Context, tx sqlc.DBTX, d *situation.Detail) error {
	if err := r.queries.InsertSituationDetail(ctx, tx, converter.DetailToInsertParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create situation detail", err)
	}
	return nil
}

func (r *SituationRepository) FindByCode(ctx context.Context, tx sqlc.DBTX, code string) (*situation.Situation, error) {
	row, err := r.queries.GetSituationByCode(ctx, tx, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get situation by code", err)
	}
	return converter.SituationFromRow(row), nil
}

func (r *SituationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*situation.Situation, error) {
	row, err := r.queries.GetSituationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock situation", err)
	}
	return converter.SituationFromRow(row), nil
}

// ApplyPatch leaves fields the patch omits untouched.
func (r *SituationRepository) ApplyPatch(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, patch situation.Patch, actorID uuid.UUID, at time.Time) error {
	params := sqlc.UpdateSituationFieldsParams{
		Km:           pgconv.Float64PtrToPgtype(patch.Km),
		Direction:    pgconv.StringPtrToPgtype(patch.Direction),
		Description:  pgconv.StringPtrToPgtype(patch.Description),
		Observations: pgconv.StringPtrToPgtype(patch.Observations),
		UpdatedBy:    actorID,
		UpdatedAt:    pgconv.TimeToPgtype(at),
		ID:           id,
	}
	if err := r.queries.UpdateSituationFields(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update situation", err)
	}
	return nil
}
