package readstore

import (
	"context"
	"time"

	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExitRequestReadQueries interface {
	GetExitRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExitRequests, error)
	ListExitRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExitRequestsParams) ([]sqlc.ExitRequests, error)
	GetPendingExitRequestForMember(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPendingExitRequestForMemberParams) (sqlc.ExitRequests, error)
	ListCrewAuthorizations(ctx context.Context, db sqlc.DBTX, exitRequestID uuid.UUID) ([]sqlc.CrewAuthorizations, error)
	ListAssignmentCrew(ctx context.Context, db sqlc.DBTX, assignmentID uuid.UUID) ([]sqlc.ListAssignmentCrewRow, error)
}

type ExitRequestReadStore struct {
	queries ExitRequestReadQueries
	db      sqlc.DBTX
}

func NewExitRequestReadStore(queries ExitRequestReadQueries, db sqlc.DBTX) *ExitRequestReadStore {
	return &ExitRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExitRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExitRequestView, error) {
	row, err := r.queries.GetExitRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exit request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get exit request", err)
	}
	return toExitRequestView(row), nil
}

func (r *ExitRequestReadStore) List(ctx context.Context, status *string, assignmentID *uuid.UUID, limit int32) ([]*queries.ExitRequestView, error) {
	rows, err := r.queries.ListExitRequests(ctx, r.db, sqlc.ListExitRequestsParams{
		Status:       pgconv.StringPtrToPgtype(status),
		AssignmentID: pgconv.UUIDPtrToPgtype(assignmentID),
		RowLimit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exit requests", err)
	}
	result := make([]*queries.ExitRequestView, len(rows))
	for i, row := range rows {
		result[i] = toExitRequestView(row)
	}
	return result, nil
}

func (r *ExitRequestReadStore) FindPendingForMember(ctx context.Context, userID uuid.UUID, now time.Time) (*queries.ExitRequestView, error) {
	row, err := r.queries.GetPendingExitRequestForMember(ctx, r.db, sqlc.GetPendingExitRequestForMemberParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending exit request for member", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pending exit request for member", err)
	}
	return toExitRequestView(row), nil
}

func (r *ExitRequestReadStore) ListVotes(ctx context.Context, requestID uuid.UUID) ([]*queries.VoteView, error) {
	rows, err := r.queries.ListCrewAuthorizations(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list crew authorizations", err)
	}
	result := make([]*queries.VoteView, len(rows))
	for i, row := range rows {
		result[i] = &queries.VoteView{
			UserID:    row.UserID,
			Approve:   row.Approve,
			Notes:     row.Notes,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ExitRequestReadStore) ListRoster(ctx context.Context, assignmentID uuid.UUID) ([]*queries.CrewMemberView, error) {
	rows, err := r.queries.ListAssignmentCrew(ctx, r.db, assignmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignment crew", err)
	}
	result := make([]*queries.CrewMemberView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CrewMemberView{
			UserID:   row.UserID,
			Username: row.Username,
			FullName: row.FullName,
			Role:     row.CrewRole,
		}
	}
	return result, nil
}

func toExitRequestView(row sqlc.ExitRequests) *queries.ExitRequestView {
	return &queries.ExitRequestView{
		ID:             row.ID,
		AssignmentID:   row.AssignmentID,
		RequestedBy:    row.RequestedBy,
		Odometer:       row.Odometer,
		Fuel:           row.Fuel,
		FuelFraction:   pgconv.StringPtrFromPgtype(row.FuelFraction),
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		Status:         row.Status,
		Deadline:       pgconv.TimeFromPgtype(row.Deadline),
		ExitID:         pgconv.UUIDPtrFromPgtype(row.ExitID),
		ManualOverride: row.ManualOverride,
		ApprovedBy:     pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovalType:   pgconv.StringPtrFromPgtype(row.ApprovalType),
		OverrideReason: pgconv.StringPtrFromPgtype(row.OverrideReason),
		ResolvedAt:     pgconv.TimePtrFromPgtype(row.ResolvedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
