//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/shared"
	sharedmock "fieldsync/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

var (
	errNotFound  = infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	errDuplicate = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
	errDBDown    = infra.WrapRepoErr("connection lost", nil, infra.KindDBFailure)
)

// harness wires a mocked unit of work whose transactions run inline against mocked repositories.
type harness struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	drafts      *sharedmock.MockDraftRepository
	evidence    *sharedmock.MockEvidenceRepository
	situations  *sharedmock.MockSituationRepository
	conflicts   *sharedmock.MockConflictRepository
	assignments *sharedmock.MockAssignmentRepository
	exits       *sharedmock.MockExitRequestRepository
	audit       *sharedmock.MockAuditRepository
	idempotency *sharedmock.MockIdempotencyRepository
	reads       *sharedmock.MockCommandReads
	clock       *clock.FrozenClock

	mu      sync.Mutex
	entries []audit.Entry
}

func newHarness(ctrl *gomock.Controller) *harness {
	h := &harness{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		drafts:      sharedmock.NewMockDraftRepository(ctrl),
		evidence:    sharedmock.NewMockEvidenceRepository(ctrl),
		situations:  sharedmock.NewMockSituationRepository(ctrl),
		conflicts:   sharedmock.NewMockConflictRepository(ctrl),
		assignments: sharedmock.NewMockAssignmentRepository(ctrl),
		exits:       sharedmock.NewMockExitRequestRepository(ctrl),
		audit:       sharedmock.NewMockAuditRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		clock:       clock.NewFrozenClock(fixedNow),
	}

	h.tx.EXPECT().Drafts().Return(h.drafts).AnyTimes()
	h.tx.EXPECT().Evidence().Return(h.evidence).AnyTimes()
	h.tx.EXPECT().Situations().Return(h.situations).AnyTimes()
	h.tx.EXPECT().Conflicts().Return(h.conflicts).AnyTimes()
	h.tx.EXPECT().Assignments().Return(h.assignments).AnyTimes()
	h.tx.EXPECT().ExitRequests().Return(h.exits).AnyTimes()
	h.tx.EXPECT().Audit().Return(h.audit).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idempotency).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	h.uow.EXPECT().Direct().Return(h.tx).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.audit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, e audit.Entry) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.entries = append(h.entries, e)
			return nil
		}).AnyTimes()

	return h
}

func (h *harness) actions() []audit.Action {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]audit.Action, 0, len(h.entries))
	for _, e := range h.entries {
		out = append(out, e.Action)
	}
	return out
}

func callerFor(id uuid.UUID, role user.Role) commands.Caller {
	return commands.Caller{
		UserID: id,
		Role:   role,
		Origin: audit.Origin{IP: "10.0.0.7", UserAgent: "fieldsync-mobile/2.3"},
	}
}
