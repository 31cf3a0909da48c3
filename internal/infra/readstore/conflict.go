package readstore

import (
	"context"
	"time"

	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository/converter"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConflictReadQueries interface {
	GetConflictCase(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ConflictCases, error)
	ListConflictCases(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConflictCasesParams) ([]sqlc.ConflictCases, error)
	ListConflictCasesByReporter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConflictCasesByReporterParams) ([]sqlc.ConflictCases, error)
}

type ConflictReadStore struct {
	queries ConflictReadQueries
	db      sqlc.DBTX
}

func NewConflictReadStore(queries ConflictReadQueries, db sqlc.DBTX) *ConflictReadStore {
	return &ConflictReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ConflictReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConflictView, error) {
	row, err := r.queries.GetConflictCase(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conflict case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get conflict case", err)
	}
	return toConflictView(row), nil
}

// List pages by (created_at, id) descending; a nil afterCreatedAt starts at the newest case.
func (r *ConflictReadStore) List(ctx context.Context, status string, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*queries.ConflictView, error) {
	params := sqlc.ListConflictCasesParams{
		Status:         status,
		AfterCreatedAt: pgconv.TimePtrToPgtype(afterCreatedAt),
		AfterID:        pgtype.UUID{},
		RowLimit:       limit,
	}
	if afterCreatedAt != nil {
		params.AfterID = pgconv.UUIDToPgtype(afterID)
	}

	rows, err := r.queries.ListConflictCases(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict cases", err)
	}
	return toConflictViews(rows), nil
}

func (r *ConflictReadStore) ListByReporter(ctx context.Context, reporterID uuid.UUID, limit int32) ([]*queries.ConflictView, error) {
	rows, err := r.queries.ListConflictCasesByReporter(ctx, r.db, sqlc.ListConflictCasesByReporterParams{
		ReportedBy: reporterID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict cases by reporter", err)
	}
	return toConflictViews(rows), nil
}

func toConflictViews(rows []sqlc.ConflictCases) []*queries.ConflictView {
	result := make([]*queries.ConflictView, len(rows))
	for i, row := range rows {
		result[i] = toConflictView(row)
	}
	return result
}

func toConflictView(row sqlc.ConflictCases) *queries.ConflictView {
	return &queries.ConflictView{
		ID:                 row.ID,
		NaturalKey:         row.NaturalKey,
		SituationID:        pgconv.UUIDPtrFromPgtype(row.SituationID),
		ClientState:        row.ClientState,
		AuthoritativeState: row.AuthoritativeState,
		Differences:        converter.DifferencesFromJSON(row.Differences),
		ReportedBy:         row.ReportedBy,
		Kind:               row.Kind,
		Status:             row.Status,
		Decision:           pgconv.StringPtrFromPgtype(row.Decision),
		ResolvedBy:         pgconv.UUIDPtrFromPgtype(row.ResolvedBy),
		ResolutionNotes:    pgconv.StringPtrFromPgtype(row.ResolutionNotes),
		EditWindowOpen:     row.EditWindowOpen,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		ResolvedAt:         pgconv.TimePtrFromPgtype(row.ResolvedAt),
	}
}
