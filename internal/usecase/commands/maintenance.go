package commands

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/exitrequest"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/usecase/shared"
)

const expireBatchSize = 100

type SweepReport struct {
	IdempotencyKeysDeleted int64
	ExitRequestsExpired    int
}

type MaintenanceCommands interface {
	SweepIdempotencyKeys(ctx context.Context, now time.Time) (int64, error)
	ExpireStaleExitRequests(ctx context.Context, now time.Time) (int, error)
	// Sweep runs both passes; the second still runs when the first fails.
	Sweep(ctx context.Context) (SweepReport, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (uc *maintenanceCommandsImpl) SweepIdempotencyKeys(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		n, err := uc.uow.Direct().Idempotency().DeleteExpired(ctx, db, now)
		if err != nil {
			return storeErr(err, nil)
		}
		deleted = n
		return nil
	})
	return deleted, err
}

// ExpireStaleExitRequests works in batches so no single transaction holds many row locks.
func (uc *maintenanceCommandsImpl) ExpireStaleExitRequests(ctx context.Context, now time.Time) (int, error) {
	total := 0
	for {
		scanned, n, err := uc.expireBatch(ctx, now)
		total += n
		if err != nil {
			return total, err
		}
		if scanned < expireBatchSize {
			return total, nil
		}
		if err := ctx.Err(); err != nil {
			return total, err
		}
	}
}

// expireBatch reports how many candidates it scanned alongside how many it expired.
func (uc *maintenanceCommandsImpl) expireBatch(ctx context.Context, now time.Time) (int, int, error) {
	var (
		scanned int
		expired int
		log     auditLog
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		scanned, expired = 0, 0
		log = auditLog{}

		overdue, err := tx.ExitRequests().ListOverdue(ctx, tx.DB(), now, expireBatchSize)
		if err != nil {
			return storeErr(err, nil)
		}
		scanned = len(overdue)
		for _, candidate := range overdue {
			a, err := tx.Assignments().FindForUpdate(ctx, tx.DB(), candidate.AssignmentID())
			if err != nil {
				return storeErr(err, nil)
			}
			r, err := tx.ExitRequests().FindForUpdate(ctx, tx.DB(), candidate.ID())
			if err != nil {
				return storeErr(err, nil)
			}
			// decided or expired by a vote while unlocked
			if r.Status() != exitrequest.StatusPendingAuth || !r.DeadlinePassed(now) {
				continue
			}
			if err := expireRequest(ctx, tx, a, r, now); err != nil {
				return err
			}
			requestID := r.ID()
			deadline := r.Deadline()
			log.add(audit.ActionRequestExpired, nil, a.ID, &requestID, nil, audit.OutcomeDetail{
				Status:   r.Status().String(),
				Deadline: &deadline,
			}, audit.Origin{}, now)
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	log.flush(ctx, uc.uow)
	return scanned, expired, nil
}

func (uc *maintenanceCommandsImpl) Sweep(ctx context.Context) (SweepReport, error) {
	now := uc.clock.Now()
	var report SweepReport

	deleted, keyErr := uc.SweepIdempotencyKeys(ctx, now)
	if keyErr != nil {
		slog.Error("idempotency sweep failed", "error", keyErr.Error())
	}
	report.IdempotencyKeysDeleted = deleted

	expired, exitErr := uc.ExpireStaleExitRequests(ctx, now)
	if exitErr != nil {
		slog.Error("exit request expiry failed", "error", exitErr.Error())
	}
	report.ExitRequestsExpired = expired

	slog.Info("maintenance sweep finished",
		"idempotency_keys_deleted", report.IdempotencyKeysDeleted,
		"exit_requests_expired", report.ExitRequestsExpired)

	if keyErr != nil {
		return report, keyErr
	}
	return report, exitErr
}
