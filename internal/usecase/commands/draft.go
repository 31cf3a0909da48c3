package commands

import (
	"context"
	"encoding/json"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertDraftInput struct {
	ClientID uuid.UUID
	Kind     string
	Payload  json.RawMessage
}

type UpsertDraftResult struct {
	ClientID uuid.UUID
	Status   draft.SyncStatus
	Created  bool
}

type DraftCommands interface {
	// Upsert creates the draft on first sight and replaces its payload while it is still pending.
	Upsert(ctx context.Context, in UpsertDraftInput, caller Caller) (*UpsertDraftResult, error)
}

type draftCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDraftCommands(uow shared.UnitOfWork, clk clock.Clock) DraftCommands {
	return &draftCommandsImpl{uow: uow, clock: clk}
}

func (uc *draftCommandsImpl) Upsert(ctx context.Context, in UpsertDraftInput, caller Caller) (*UpsertDraftResult, error) {
	kind, err := draft.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if in.ClientID == uuid.Nil {
		return nil, draft.ErrEmptyClientID
	}
	now := uc.clock.Now()

	var result *UpsertDraftResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), in.ClientID)
		switch {
		case err == nil:
			if err := existing.Replace(kind, in.Payload, caller.UserID, now); err != nil {
				return err
			}
			if err := tx.Drafts().Save(ctx, tx.DB(), existing); err != nil {
				return storeErr(err, nil)
			}
			result = &UpsertDraftResult{ClientID: existing.ClientID(), Status: existing.Status()}
			return nil
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return storeErr(err, nil)
		}

		d, err := draft.NewDraft(in.ClientID, kind, in.Payload, caller.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.Drafts().Create(ctx, tx.DB(), d); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithResource(errs.Mark(err, errs.ErrConflict), "draft", d.ClientID().String())
			}
			return storeErr(err, nil)
		}
		result = &UpsertDraftResult{ClientID: d.ClientID(), Status: d.Status(), Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
