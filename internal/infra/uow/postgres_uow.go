package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldsync/internal/infra/readstore"
	"fieldsync/internal/infra/repository"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: DefaultRetryPolicy,
	}
}

// ReadCommitted plus explicit row locks; serialization failures and deadlocks are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Direct binds repositories to the pool; each write commits on its own.
func (u *PostgresUoW) Direct() shared.Tx {
	return &pgTx{dbtx: u.pool, uow: u}
}

// runInTx opens a fresh transaction per attempt. A finalize or vote that
// loses a deadlock is replayed from scratch, so fn must not keep state
// between calls.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		wait, retry := u.retry.next(err, attempt)
		if !retry {
			break
		}
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return errs.Transient(ctx.Err())
		case <-time.After(wait):
		}
	}

	switch {
	case isRetryableError(err):
		slog.Error("transaction failed after max retries", "attempts", u.retry.MaxRetries+1, "error", err.Error())
		return errs.Transient(errs.Mark(err, errMaxRetriesExceeded))
	case errs.Is(err, errTransactionBegin), errs.Is(err, errTransactionCommit):
		return errs.Transient(err)
	default:
		return err
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = runGuarded(ctx, pgxTx, func() error { return fn(ctx, &pgTx{dbtx: pgxTx, uow: u}) })
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Transient(errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	draftRepo       shared.DraftRepository
	evidenceRepo    shared.EvidenceRepository
	situationRepo   shared.SituationRepository
	conflictRepo    shared.ConflictRepository
	assignmentRepo  shared.AssignmentRepository
	exitRequestRepo shared.ExitRequestRepository
	auditRepo       shared.AuditRepository
	idempotencyRepo shared.IdempotencyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Drafts() shared.DraftRepository {
	if t.draftRepo == nil {
		t.draftRepo = repository.NewDraftRepository(t.uow.q, t.dbtx)
	}
	return t.draftRepo
}

func (t *pgTx) Evidence() shared.EvidenceRepository {
	if t.evidenceRepo == nil {
		t.evidenceRepo = repository.NewEvidenceRepository(t.uow.q, t.dbtx)
	}
	return t.evidenceRepo
}

func (t *pgTx) Situations() shared.SituationRepository {
	if t.situationRepo == nil {
		t.situationRepo = repository.NewSituationRepository(t.uow.q, t.dbtx)
	}
	return t.situationRepo
}

func (t *pgTx) Conflicts() shared.ConflictRepository {
	if t.conflictRepo == nil {
		t.conflictRepo = repository.NewConflictRepository(t.uow.q, t.dbtx)
	}
	return t.conflictRepo
}

func (t *pgTx) Assignments() shared.AssignmentRepository {
	if t.assignmentRepo == nil {
		t.assignmentRepo = repository.NewAssignmentRepository(t.uow.q, t.dbtx)
	}
	return t.assignmentRepo
}

func (t *pgTx) ExitRequests() shared.ExitRequestRepository {
	if t.exitRequestRepo == nil {
		t.exitRequestRepo = repository.NewExitRequestRepository(t.uow.q, t.dbtx)
	}
	return t.exitRequestRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.uow.q, t.dbtx)
	}
	return t.auditRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, now time.Time) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, now)
}

// runGuarded rolls the transaction back before letting a panic continue.
func runGuarded(ctx context.Context, tx pgx.Tx, fn func() error) error {
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback(ctx)
			panic(rec)
		}
	}()
	return fn()
}
