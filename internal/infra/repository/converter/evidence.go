package converter

import (
	"fieldsync/internal/domain/evidence"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
)

func EvidenceToInsertParams(item *evidence.Item) sqlc.InsertEvidenceItemParams {
	meta := item.Metadata()
	return sqlc.InsertEvidenceItemParams{
		ID:              item.ID(),
		DraftClientID:   item.DraftClientID(),
		Kind:            item.Kind().String(),
		Ordinal:         pgconv.Int32PtrToPgtype(item.Ordinal()),
		StorageRef:      item.StorageRef(),
		PreviewRef:      pgconv.StringPtrToPgtype(meta.PreviewRef),
		Width:           pgconv.Int32PtrToPgtype(meta.Width),
		Height:          pgconv.Int32PtrToPgtype(meta.Height),
		DurationSeconds: pgconv.Int32PtrToPgtype(meta.DurationSeconds),
		SizeBytes:       pgconv.Int64PtrToPgtype(meta.SizeBytes),
		Status:          string(item.Status()),
		UploadedBy:      item.UploadedBy(),
		CreatedAt:       pgconv.TimeToPgtype(item.CreatedAt()),
	}
}

func EvidenceToMetadataParams(item *evidence.Item) sqlc.UpdateEvidenceMetadataParams {
	meta := item.Metadata()
	return sqlc.UpdateEvidenceMetadataParams{
		ID:              item.ID(),
		PreviewRef:      pgconv.StringPtrToPgtype(meta.PreviewRef),
		Width:           pgconv.Int32PtrToPgtype(meta.Width),
		Height:          pgconv.Int32PtrToPgtype(meta.Height),
		DurationSeconds: pgconv.Int32PtrToPgtype(meta.DurationSeconds),
		SizeBytes:       pgconv.Int64PtrToPgtype(meta.SizeBytes),
	}
}

func EvidenceFromRow(row sqlc.EvidenceItems) *evidence.Item {
	return evidence.ReconstructItem(
		row.ID,
		row.DraftClientID,
		pgconv.UUIDPtrFromPgtype(row.SituationID),
		evidence.Kind(row.Kind),
		pgconv.Int32PtrFromPgtype(row.Ordinal),
		row.StorageRef,
		evidence.Metadata{
			PreviewRef:      pgconv.StringPtrFromPgtype(row.PreviewRef),
			Width:           pgconv.Int32PtrFromPgtype(row.Width),
			Height:          pgconv.Int32PtrFromPgtype(row.Height),
			DurationSeconds: pgconv.Int32PtrFromPgtype(row.DurationSeconds),
			SizeBytes:       pgconv.Int64PtrFromPgtype(row.SizeBytes),
		},
		evidence.Status(row.Status),
		row.UploadedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
