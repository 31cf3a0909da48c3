package queries

import (
	"context"
	"encoding/json"
	"time"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrConflictCaseNotFound = errs.NotFound("conflict case not found")

type ConflictView struct {
	ID                 uuid.UUID            `json:"id"`
	NaturalKey         string               `json:"natural_key"`
	SituationID        *uuid.UUID           `json:"situation_id,omitempty"`
	ClientState        json.RawMessage      `json:"client_state"`
	AuthoritativeState json.RawMessage      `json:"authoritative_state,omitempty"`
	Differences        conflict.Differences `json:"differences"`
	ReportedBy         uuid.UUID            `json:"reported_by"`
	Kind               string               `json:"kind"`
	Status             string               `json:"status"`
	Decision           *string              `json:"decision,omitempty"`
	ResolvedBy         *uuid.UUID           `json:"resolved_by,omitempty"`
	ResolutionNotes    *string              `json:"resolution_notes,omitempty"`
	EditWindowOpen     bool                 `json:"edit_window_open"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	ResolvedAt         *time.Time           `json:"resolved_at,omitempty"`
}

type ConflictReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConflictView, error)
	List(ctx context.Context, status string, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*ConflictView, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID, limit int32) ([]*ConflictView, error)
}

type ConflictQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ConflictView, error)
	// List defaults to pending cases, newest first.
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*ConflictView, *Cursor, error)
	ListMine(ctx context.Context, reporterID uuid.UUID) ([]*ConflictView, error)
}

type conflictQueriesImpl struct {
	store     ConflictReadStore
	mineLimit int
}

func NewConflictQueries(store ConflictReadStore, mineLimit int) ConflictQueries {
	return &conflictQueriesImpl{store: store, mineLimit: ValidateLimit(mineLimit)}
}

func (q *conflictQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ConflictView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrConflictCaseNotFound)
	}
	return view, nil
}

func (q *conflictQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*ConflictView, *Cursor, error) {
	st := conflict.StatusPending
	if status != "" {
		parsed, err := conflict.ParseStatus(status)
		if err != nil {
			return nil, nil, err
		}
		st = parsed
	}

	limit = ValidateLimit(limit)
	var afterCreatedAt *time.Time
	afterID := uuid.Nil
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After, st.String())
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		afterCreatedAt, afterID = &t, id
	}

	rows, err := q.store.List(ctx, st.String(), afterCreatedAt, afterID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, errs.Transient(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(st.String(), last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *conflictQueriesImpl) ListMine(ctx context.Context, reporterID uuid.UUID) ([]*ConflictView, error) {
	rows, err := q.store.ListByReporter(ctx, reporterID, int32(q.mineLimit)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, errs.Transient(err)
	}
	return rows, nil
}
