package commands

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

// auditLog collects entries during a transaction; they are written once it commits.
type auditLog struct {
	entries []audit.Entry
}

func (l *auditLog) add(action audit.Action, actorID *uuid.UUID, assignmentID uuid.UUID, requestID, exitID *uuid.UUID, detail any, origin audit.Origin, now time.Time) {
	entry, err := audit.NewEntry(action, actorID, assignmentID, requestID, exitID, detail, origin, now)
	if err != nil {
		slog.Error("failed to build audit entry", "action", string(action), "error", err.Error())
		return
	}
	l.entries = append(l.entries, entry)
}

// flush is best effort: a failed append is logged and the remaining entries are still written.
func (l *auditLog) flush(ctx context.Context, uow shared.UnitOfWork) {
	if len(l.entries) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	direct := uow.Direct()
	for _, e := range l.entries {
		if err := direct.Audit().Append(ctx, direct.DB(), e); err != nil {
			slog.Warn("failed to append audit entry",
				"action", string(e.Action),
				"assignment_id", e.AssignmentID.String(),
				"error", err.Error())
		}
	}
	l.entries = nil
}
