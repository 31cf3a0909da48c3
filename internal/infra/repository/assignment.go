package repository

import (
	"context"
	"time"

	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AssignmentWriteQueries interface {
	GetAssignmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Assignments, error)
	ListAssignmentCrew(ctx context.Context, db sqlc.DBTX, assignmentID uuid.UUID) ([]sqlc.ListAssignmentCrewRow, error)
	UpdateAssignmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAssignmentStatusParams) error
}

type AssignmentRepository struct {
	queries AssignmentWriteQueries
	db      sqlc.DBTX
}

func NewAssignmentRepository(queries AssignmentWriteQueries, db sqlc.DBTX) *AssignmentRepository {
	return &AssignmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AssignmentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Assignment, error) {
	row, err := r.queries.GetAssignmentForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock assignment", err)
	}
	crew, err := r.queries.ListAssignmentCrew(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignment crew", err)
	}
	return converter.AssignmentFromRows(row, crew), nil
}

func (r *AssignmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status exitrequest.AssignmentStatus, exitID *uuid.UUID, at time.Time) error {
	params := sqlc.UpdateAssignmentStatusParams{
		ID:        id,
		Status:    string(status),
		ExitID:    pgconv.UUIDPtrToPgtype(exitID),
		UpdatedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.UpdateAssignmentStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update assignment status", err)
	}
	return nil
}
