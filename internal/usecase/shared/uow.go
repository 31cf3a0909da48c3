package shared

import (
	"context"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/domain/situation"
	sqlc "fieldsync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
	// Repositories bound to the pool, for best-effort writes outside a transaction
	Direct() Tx
}

type Tx interface {
	Drafts() DraftRepository
	Evidence() EvidenceRepository
	Situations() SituationRepository
	Conflicts() ConflictRepository
	Assignments() AssignmentRepository
	ExitRequests() ExitRequestRepository
	Audit() AuditRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	IdempotencyByKey(ctx context.Context, key uuid.UUID, now time.Time) (*IdempotencyRecord, error)
}

type DraftRepository interface {
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*draft.Draft, error)
	Create(ctx context.Context, tx sqlc.DBTX, d *draft.Draft) error
	Save(ctx context.Context, tx sqlc.DBTX, d *draft.Draft) error
}

type EvidenceRepository interface {
	Occupancy(ctx context.Context, tx sqlc.DBTX, draftClientID uuid.UUID) (evidence.Occupancy, error)
	FindByStorageRef(ctx context.Context, tx sqlc.DBTX, storageRef string) (*evidence.Item, error)
	Create(ctx context.Context, tx sqlc.DBTX, item *evidence.Item) error
	UpdateMetadata(ctx context.Context, tx sqlc.DBTX, item *evidence.Item) error
	LinkToSituation(ctx context.Context, tx sqlc.DBTX, draftClientID, situationID uuid.UUID) (int64, error)
}

type SituationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *situation.Situation) error
	CreateDetail(ctx context.Context, tx sqlc.DBTX, d *situation.Detail) error
	FindByCode(ctx context.Context, tx sqlc.DBTX, code string) (*situation.Situation, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*situation.Situation, error)
	ApplyPatch(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, patch situation.Patch, actorID uuid.UUID, at time.Time) error
}

type ConflictRepository interface {
	UpsertPending(ctx context.Context, tx sqlc.DBTX, c *conflict.Case) (uuid.UUID, bool, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*conflict.Case, error)
	SaveResolution(ctx context.Context, tx sqlc.DBTX, c *conflict.Case) error
}

type AssignmentRepository interface {
	// FindForUpdate locks the assignment row and loads its crew roster.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Assignment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status exitrequest.AssignmentStatus, exitID *uuid.UUID, at time.Time) error
}

type ExitRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *exitrequest.Request) error
	// Find reads without a lock so callers can take the assignment lock first.
	Find(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Request, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exitrequest.Request, error)
	FindPendingByAssignmentForUpdate(ctx context.Context, tx sqlc.DBTX, assignmentID uuid.UUID) (*exitrequest.Request, error)
	ListOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*exitrequest.Request, error)
	SaveOutcome(ctx context.Context, tx sqlc.DBTX, r *exitrequest.Request) error
	Votes(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID) ([]exitrequest.Vote, error)
	AddVote(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, vote exitrequest.Vote, at time.Time) error
	CreateExit(ctx context.Context, tx sqlc.DBTX, exit *exitrequest.Exit) error
}

type AuditRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entry audit.Entry) error
}

type IdempotencyRepository interface {
	// Save keeps the first record for a key; it reports whether this call stored it.
	Save(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord) (bool, error)
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}
