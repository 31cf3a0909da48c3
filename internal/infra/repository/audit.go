package repository

import (
	"context"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
)

type AuditWriteQueries interface {
	InsertAuditEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditEntryParams) error
}

type AuditRepository struct {
	queries AuditWriteQueries
	db      sqlc.DBTX
}

func NewAuditRepository(queries AuditWriteQueries, db sqlc.DBTX) *AuditRepository {
	return &AuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditRepository) Append(ctx context.Context, tx sqlc.DBTX, entry audit.Entry) error {
	params := sqlc.InsertAuditEntryParams{
		Action:        string(entry.Action),
		ActorID:       pgconv.UUIDPtrToPgtype(entry.ActorID),
		AssignmentID:  entry.AssignmentID,
		ExitRequestID: pgconv.UUIDPtrToPgtype(entry.ExitRequestID),
		ExitID:        pgconv.UUIDPtrToPgtype(entry.ExitID),
		Detail:        entry.Detail,
		Ip:            entry.Origin.IP,
		UserAgent:     entry.Origin.UserAgent,
		CreatedAt:     pgconv.TimeToPgtype(entry.CreatedAt),
	}
	if err := r.queries.InsertAuditEntry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}
