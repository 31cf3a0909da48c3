package readstore

import (
	"context"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
)

type DraftReadQueries interface {
	GetDraft(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.Drafts, error)
	ListEvidenceByDraft(ctx context.Context, db sqlc.DBTX, draftClientID uuid.UUID) ([]sqlc.EvidenceItems, error)
	ListPendingDraftsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListPendingDraftsByOwnerRow, error)
}

type DraftReadStore struct {
	queries DraftReadQueries
	db      sqlc.DBTX
}

func NewDraftReadStore(queries DraftReadQueries, db sqlc.DBTX) *DraftReadStore {
	return &DraftReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DraftReadStore) FindByID(ctx context.Context, clientID uuid.UUID) (*queries.DraftView, error) {
	row, err := r.queries.GetDraft(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get draft", err)
	}
	return &queries.DraftView{
		ClientID:      row.ClientID,
		Kind:          row.Kind,
		Payload:       row.Payload,
		OwnerID:       row.OwnerID,
		Status:        row.Status,
		ErrorDetail:   pgconv.StringPtrFromPgtype(row.ErrorDetail),
		Attempts:      row.Attempts,
		LastAttemptAt: pgconv.TimePtrFromPgtype(row.LastAttemptAt),
		SituationID:   pgconv.UUIDPtrFromPgtype(row.SituationID),
		DetailID:      pgconv.UUIDPtrFromPgtype(row.DetailID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *DraftReadStore) ListEvidence(ctx context.Context, clientID uuid.UUID) ([]*queries.EvidenceView, error) {
	rows, err := r.queries.ListEvidenceByDraft(ctx, r.db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list draft evidence", err)
	}
	result := make([]*queries.EvidenceView, len(rows))
	for i, row := range rows {
		result[i] = &queries.EvidenceView{
			ID:              row.ID,
			Kind:            row.Kind,
			Ordinal:         pgconv.Int32PtrFromPgtype(row.Ordinal),
			StorageRef:      row.StorageRef,
			PreviewRef:      pgconv.StringPtrFromPgtype(row.PreviewRef),
			Width:           pgconv.Int32PtrFromPgtype(row.Width),
			Height:          pgconv.Int32PtrFromPgtype(row.Height),
			DurationSeconds: pgconv.Int32PtrFromPgtype(row.DurationSeconds),
			SizeBytes:       pgconv.Int64PtrFromPgtype(row.SizeBytes),
			Status:          row.Status,
			SituationID:     pgconv.UUIDPtrFromPgtype(row.SituationID),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *DraftReadStore) ListPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PendingDraftItem, error) {
	rows, err := r.queries.ListPendingDraftsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending drafts", err)
	}
	result := make([]*queries.PendingDraftItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.PendingDraftItem{
			ClientID:      row.ClientID,
			Kind:          row.Kind,
			Status:        row.Status,
			ErrorDetail:   pgconv.StringPtrFromPgtype(row.ErrorDetail),
			Attempts:      row.Attempts,
			LastAttemptAt: pgconv.TimePtrFromPgtype(row.LastAttemptAt),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
			Completeness:  evidence.NewTally(int(row.ImageCount), int(row.VideoCount)),
		}
	}
	return result, nil
}
