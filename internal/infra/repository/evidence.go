package repository

import (
	"context"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EvidenceWriteQueries interface {
	GetDraftEvidenceOccupancy(ctx context.Context, db sqlc.DBTX, draftClientID uuid.UUID) (sqlc.GetDraftEvidenceOccupancyRow, error)
	GetEvidenceByStorageRef(ctx context.Context, db sqlc.DBTX, storageRef string) (sqlc.EvidenceItems, error)
	InsertEvidenceItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertEvidenceItemParams) error
	UpdateEvidenceMetadata(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEvidenceMetadataParams) error
	LinkDraftEvidence(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkDraftEvidenceParams) (int64, error)
}

type EvidenceRepository struct {
	queries EvidenceWriteQueries
	db      sqlc.DBTX
}

func NewEvidenceRepository(queries EvidenceWriteQueries, db sqlc.DBTX) *EvidenceRepository {
	return &EvidenceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EvidenceRepository) Occupancy(ctx context.Context, tx sqlc.DBTX, draftClientID uuid.UUID) (evidence.Occupancy, error) {
	row, err := r.queries.GetDraftEvidenceOccupancy(ctx, tx, draftClientID)
	if err != nil {
		return evidence.Occupancy{}, infra.WrapRepoErr("failed to count draft evidence", err)
	}
	return evidence.Occupancy{
		Images:     int(row.ImageCount),
		Videos:     int(row.VideoCount),
		MaxOrdinal: row.MaxOrdinal,
	}, nil
}

func (r *EvidenceRepository) FindByStorageRef(ctx context.Context, tx sqlc.DBTX, storageRef string) (*evidence.Item, error) {
	row, err := r.queries.GetEvidenceByStorageRef(ctx, tx, storageRef)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get evidence by storage ref", err)
	}
	return converter.EvidenceFromRow(row), nil
}

func (r *EvidenceRepository) Create(ctx context.Context, tx sqlc.DBTX, item *evidence.Item) error {
	if err := r.queries.InsertEvidenceItem(ctx, tx, converter.EvidenceToInsertParams(item)); err != nil {
		return infra.WrapRepoErr("failed to create evidence item", err)
	}
	return nil
}

func (r *EvidenceRepository) UpdateMetadata(ctx context.Context, tx sqlc.DBTX, item *evidence.Item) error {
	if err := r.queries.UpdateEvidenceMetadata(ctx, tx, converter.EvidenceToMetadataParams(item)); err != nil {
		return infra.WrapRepoErr("failed to update evidence metadata", err)
	}
	return nil
}

func (r *EvidenceRepository) LinkToSituation(ctx context.Context, tx sqlc.DBTX, draftClientID, situationID uuid.UUID) (int64, error) {
	params := sqlc.LinkDraftEvidenceParams{
		SituationID:   pgconv.UUIDToPgtype(situationID),
		DraftClientID: draftClientID,
	}
	n, err := r.queries.LinkDraftEvidence(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to link draft evidence", err)
	}
	return n, nil
}
