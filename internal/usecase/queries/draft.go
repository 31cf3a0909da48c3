package queries

import (
	"context"
	"encoding/json"
	"time"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errs.NotFound("draft not found")

type EvidenceView struct {
	ID              uuid.UUID  `json:"id"`
	Kind            string     `json:"kind"`
	Ordinal         *int32     `json:"ordinal,omitempty"`
	StorageRef      string     `json:"storage_ref"`
	PreviewRef      *string    `json:"preview_ref,omitempty"`
	Width           *int32     `json:"width,omitempty"`
	Height          *int32     `json:"height,omitempty"`
	DurationSeconds *int32     `json:"duration_seconds,omitempty"`
	SizeBytes       *int64     `json:"size_bytes,omitempty"`
	Status          string     `json:"status"`
	SituationID     *uuid.UUID `json:"situation_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DraftView struct {
	ClientID      uuid.UUID       `json:"client_id"`
	Kind          string          `json:"kind"`
	Payload       json.RawMessage `json:"payload"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Status        string          `json:"status"`
	ErrorDetail   *string         `json:"error_detail,omitempty"`
	Attempts      int32           `json:"attempts"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	SituationID   *uuid.UUID      `json:"situation_id,omitempty"`
	DetailID      *uuid.UUID      `json:"detail_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Evidence      []*EvidenceView `json:"evidence"`
	Completeness  evidence.Tally  `json:"completeness"`
}

type PendingDraftItem struct {
	ClientID      uuid.UUID      `json:"client_id"`
	Kind          string         `json:"kind"`
	Status        string         `json:"status"`
	ErrorDetail   *string        `json:"error_detail,omitempty"`
	Attempts      int32          `json:"attempts"`
	LastAttemptAt *time.Time     `json:"last_attempt_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Completeness  evidence.Tally `json:"completeness"`
}

type DraftReadStore interface {
	FindByID(ctx context.Context, clientID uuid.UUID) (*DraftView, error)
	ListEvidence(ctx context.Context, clientID uuid.UUID) ([]*EvidenceView, error)
	ListPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PendingDraftItem, error)
}

type DraftQueries interface {
	Get(ctx context.Context, clientID, viewerID uuid.UUID, viewerRole user.Role) (*DraftView, error)
	ListPending(ctx context.Context, ownerID uuid.UUID) ([]*PendingDraftItem, error)
}

type draftQueriesImpl struct {
	store DraftReadStore
}

func NewDraftQueries(store DraftReadStore) DraftQueries {
	return &draftQueriesImpl{store: store}
}

// Get hides drafts of other owners behind NotFound unless the viewer may read any draft.
func (q *draftQueriesImpl) Get(ctx context.Context, clientID, viewerID uuid.UUID, viewerRole user.Role) (*DraftView, error) {
	view, err := q.store.FindByID(ctx, clientID)
	if err != nil {
		return nil, storeErr(err, ErrDraftNotFound)
	}
	if view.OwnerID != viewerID && !viewerRole.CanReadAnyDraft() {
		return nil, ErrDraftNotFound
	}

	items, err := q.store.ListEvidence(ctx, clientID)
	if err != nil {
		return nil, storeErr(err, ErrDraftNotFound)
	}

	images, videos := 0, 0
	for _, it := range items {
		switch evidence.Kind(it.Kind) {
		case evidence.KindImage:
			images++
		case evidence.KindVideo:
			videos++
		}
	}
	view.Evidence = items
	view.Completeness = evidence.NewTally(images, videos)
	return view, nil
}

func (q *draftQueriesImpl) ListPending(ctx context.Context, ownerID uuid.UUID) ([]*PendingDraftItem, error) {
	items, err := q.store.ListPendingByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Transient(err)
	}
	return items, nil
}
