package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/domain/situation"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/usecase/queries"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReportConflictInput struct {
	NaturalKey         string
	ClientState        json.RawMessage
	AuthoritativeState json.RawMessage
	Differences        conflict.Differences
	Kind               string
}

type ReportConflictResult struct {
	CaseID  uuid.UUID
	Created bool
}

type ResolveConflictInput struct {
	CaseID   uuid.UUID
	Decision string
	Notes    string
}

type ConflictCommands interface {
	// Report opens a case, or refreshes the reporter's pending case for the same key.
	Report(ctx context.Context, in ReportConflictInput, caller Caller) (*ReportConflictResult, error)
	Resolve(ctx context.Context, in ResolveConflictInput, caller Caller) error
}

type conflictCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy conflict.EditPolicy
}

func NewConflictCommands(uow shared.UnitOfWork, clk clock.Clock, policy conflict.EditPolicy) ConflictCommands {
	return &conflictCommandsImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *conflictCommandsImpl) Report(ctx context.Context, in ReportConflictInput, caller Caller) (*ReportConflictResult, error) {
	kind, err := conflict.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if err := in.Differences.Validate(); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(in.NaturalKey)
	if key == "" {
		return nil, conflict.ErrEmptyNaturalKey
	}
	now := uc.clock.Now()

	var result *ReportConflictResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var (
			situationID *uuid.UUID
			windowOpen  bool
		)
		authoritative := in.AuthoritativeState

		sit, err := tx.Situations().FindByCode(ctx, tx.DB(), key)
		switch {
		case err == nil:
			id := sit.ID()
			situationID = &id
			if isAbsent(authoritative) {
				authoritative = sit.Snapshot()
			}
			windowOpen = uc.policy.WindowOpen(sit.CreatedAt(), sit.CreatedBy(), caller.UserID, now)
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return storeErr(err, nil)
		}

		c, err := conflict.NewCase(key, situationID, in.ClientState, authoritative, in.Differences, kind, caller.UserID, windowOpen, now)
		if err != nil {
			return err
		}
		id, created, err := tx.Conflicts().UpsertPending(ctx, tx.DB(), c)
		if err != nil {
			return storeErr(err, nil)
		}
		result = &ReportConflictResult{CaseID: id, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Resolve is terminal. USE_CLIENT on a linked case writes the client values to the situation first.
func (uc *conflictCommandsImpl) Resolve(ctx context.Context, in ResolveConflictInput, caller Caller) error {
	decision, err := conflict.ParseDecision(in.Decision)
	if err != nil {
		return err
	}
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Conflicts().FindForUpdate(ctx, tx.DB(), in.CaseID)
		if err != nil {
			return storeErr(err, queries.ErrConflictCaseNotFound)
		}
		if err := c.Resolve(decision, in.Notes, caller.UserID, now); err != nil {
			return err
		}

		if c.AppliesClientState() {
			patch, err := c.ClientPatch()
			if err != nil {
				return err
			}
			if !patch.IsEmpty() {
				if err := uc.applyPatch(ctx, tx, *c.SituationID(), patch, caller.UserID); err != nil {
					return err
				}
			}
		}

		if err := tx.Conflicts().SaveResolution(ctx, tx.DB(), c); err != nil {
			return storeErr(err, nil)
		}
		return nil
	})
}

func (uc *conflictCommandsImpl) applyPatch(ctx context.Context, tx shared.Tx, situationID uuid.UUID, patch situation.Patch, actorID uuid.UUID) error {
	if _, err := tx.Situations().FindForUpdate(ctx, tx.DB(), situationID); err != nil {
		return storeErr(err, nil)
	}
	if err := tx.Situations().ApplyPatch(ctx, tx.DB(), situationID, patch, actorID, uc.clock.Now()); err != nil {
		return storeErr(err, nil)
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
