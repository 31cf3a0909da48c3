package converter

import (
	"fieldsync/internal/domain/draft"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
)

func DraftToInsertParams(d *draft.Draft) sqlc.InsertDraftParams {
	return sqlc.InsertDraftParams{
		ClientID:  d.ClientID(),
		Kind:      d.Kind().String(),
		Payload:   d.Payload(),
		OwnerID:   d.OwnerID(),
		Status:    d.Status().String(),
		Attempts:  d.Attempts(),
		CreatedAt: pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DraftToUpdateParams(d *draft.Draft) sqlc.UpdateDraftParams {
	return sqlc.UpdateDraftParams{
		ClientID:      d.ClientID(),
		Kind:          d.Kind().String(),
		Payload:       d.Payload(),
		Status:        d.Status().String(),
		ErrorDetail:   pgconv.StringPtrToPgtype(d.ErrorDetail()),
		Attempts:      d.Attempts(),
		LastAttemptAt: pgconv.TimePtrToPgtype(d.LastAttemptAt()),
		SituationID:   pgconv.UUIDPtrToPgtype(d.SituationID()),
		DetailID:      pgconv.UUIDPtrToPgtype(d.DetailID()),
		UpdatedAt:     pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DraftFromRow(row sqlc.Drafts) *draft.Draft {
	return draft.ReconstructDraft(
		row.ClientID,
		draft.Kind(row.Kind),
		row.Payload,
		row.OwnerID,
		draft.SyncStatus(row.Status),
		pgconv.StringPtrFromPgtype(row.ErrorDetail),
		row.Attempts,
		pgconv.TimePtrFromPgtype(row.LastAttemptAt),
		pgconv.UUIDPtrFromPgtype(row.SituationID),
		pgconv.UUIDPtrFromPgtype(row.DetailID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
