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

type ExitRequestWriteQueries interface {
	InsertExitRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertExitRequestParams) error
	GetExitRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExitRequests, error)
	GetExitRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExitRequests, error)
	GetPendingExitRequestByAssignmentForUpdate(ctx context.Context, db sqlc.DBTX, assignmentID uuid.UUID) (sqlc.ExitRequests, error)
	ListOverdueExitRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverdueExitRequestsParams) ([]sqlc.ExitRequests, error)
	UpdateExitRequestOutcome(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateExitRequestOutcomeParams) error
	ListCrewAuthorizations(ctx context.Context, db sqlc.DBTX, exitRequestID uuid.UUID) ([]sqlc.CrewAuthorizations, error)
	InsertCrewAuthorization(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCrewAuthorizationParams) error
	InsertExit(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertExitParams) error
	InsertExitCrewMember(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertExitCrewMemberParams) error
}

type ExitRequestRepository struct {
	queries ExitRequestWriteQueries
	db      sqlc.DBTX
}

func NewExitRequestRepository(queries ExitRequestWriteQueries, db sqlc.DBTX) *ExitRequestRepository {
	return &ExitRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExitRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *exitrequest.Request) error {
	if err := r.queries.InsertExitRequest(ctx, tx, converter.ExitRequestToInsertParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create exit request", err)
	}
	return nil
}

func (r *ExitRequestRepository) Find(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Request, error) {
	row, err := r.queries.GetExitRequest(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get exit request", err)
	}
	return converter.ExitRequestFromRow(row), nil
}

func (r *ExitRequestRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Request, error) {
	row, err := r.queries.GetExitRequestForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock exit request", err)
	}
	return converter.ExitRequestFromRow(row), nil
}

func (r *ExitRequestRepository) FindPendingByAssignmentForUpdate(ctx context.Context, tx sqlc.DBTX, assignmentID uuid.UUID) (*exitrequest.Request, error) {
	row, err := r.queries.GetPendingExitRequestByAssignmentForUpdate(ctx, tx, assignmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending exit request", err)
	}
	return converter.ExitRequestFromRow(row), nil
}

// ListOverdue reads without locking; callers lock the assignment and then the request.
func (r *ExitRequestRepository) ListOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*exitrequest.Request, error) {
	rows, err := r.queries.ListOverdueExitRequests(ctx, tx, sqlc.ListOverdueExitRequestsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue exit requests", err)
	}
	out := make([]*exitrequest.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ExitRequestFromRow(row))
	}
	return out, nil
}

func (r *ExitRequestRepository) SaveOutcome(ctx context.Context, tx sqlc.DBTX, req *exitrequest.Request) error {
	if err := r.queries.UpdateExitRequestOutcome(ctx, tx, converter.ExitRequestToOutcomeParams(req)); err != nil {
		return infra.WrapRepoErr("failed to save exit request outcome", err)
	}
	return nil
}

func (r *ExitRequestRepository) Votes(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID) ([]exitrequest.Vote, error) {
	rows, err := r.queries.ListCrewAuthorizations(ctx, tx, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list crew authorizations", err)
	}
	votes := make([]exitrequest.Vote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, exitrequest.Vote{UserID: row.UserID, Approve: row.Approve, Notes: row.Notes})
	}
	return votes, nil
}

// AddVote surfaces a second vote by the same member as KindDuplicateKey.
func (r *ExitRequestRepository) AddVote(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, vote exitrequest.Vote, at time.Time) error {
	params := sqlc.InsertCrewAuthorizationParams{
		ID:            uuid.New(),
		ExitRequestID: requestID,
		UserID:        vote.UserID,
		Approve:       vote.Approve,
		Notes:         vote.Notes,
		CreatedAt:     pgconv.TimeToPgtype(at),
	}
	if err := r.queries.InsertCrewAuthorization(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record crew authorization", err)
	}
	return nil
}

func (r *ExitRequestRepository) CreateExit(ctx context.Context, tx sqlc.DBTX, exit *exitrequest.Exit) error {
	if err := r.queries.InsertExit(ctx, tx, converter.ExitToInsertParams(exit)); err != nil {
		return infra.WrapRepoErr("failed to create exit", err)
	}
	for _, m := range exit.Crew {
		params := sqlc.InsertExitCrewMemberParams{
			ExitID:   exit.ID,
			UserID:   m.UserID,
			CrewRole: string(m.Role),
		}
		if err := r.queries.InsertExitCrewMember(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to copy exit crew", err)
		}
	}
	return nil
}
