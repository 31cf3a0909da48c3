package commands

import (
	"context"
	"log/slog"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/situation"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/queries"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type FinalizeResult struct {
	PrimaryID uuid.UUID
	DetailID  uuid.UUID
	Replayed  bool
}

type FinalizeCommands interface {
	// Finalize turns a draft into its situation and detail records in one transaction.
	Finalize(ctx context.Context, clientID uuid.UUID, caller Caller) (*FinalizeResult, error)
}

type finalizeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFinalizeCommands(uow shared.UnitOfWork, clk clock.Clock) FinalizeCommands {
	return &finalizeCommandsImpl{uow: uow, clock: clk}
}

func (uc *finalizeCommandsImpl) Finalize(ctx context.Context, clientID uuid.UUID, caller Caller) (*FinalizeResult, error) {
	now := uc.clock.Now()

	var (
		result *FinalizeResult
		owned  bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned = false
		d, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), clientID)
		if err != nil {
			return storeErr(err, queries.ErrDraftNotFound)
		}
		if !d.OwnedBy(caller.UserID) {
			return queries.ErrDraftNotFound
		}
		owned = true

		if d.IsSynchronized() {
			result = replayedResult(d)
			return nil
		}
		if err := d.BeginFinalize(now); err != nil {
			return err
		}
		content, err := d.Decode()
		if err != nil {
			return err
		}

		sit := situation.NewSituation(d.ClientID(), d.Kind().String(), content.Situation, caller.UserID, now)
		existing, err := tx.Situations().FindByCode(ctx, tx.DB(), sit.Code())
		switch {
		case err == nil:
			return errs.WithResource(situation.ErrCodeTaken, "situation", existing.ID().String())
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return storeErr(err, nil)
		}
		if err := tx.Situations().Create(ctx, tx.DB(), sit); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithResource(situation.ErrCodeTaken, "situation", sit.Code())
			}
			return storeErr(err, nil)
		}

		detail, err := situation.NewDetail(sit.ID(), content.DetailType, content.Detail, caller.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.Situations().CreateDetail(ctx, tx.DB(), detail); err != nil {
			return storeErr(err, nil)
		}
		if _, err := tx.Evidence().LinkToSituation(ctx, tx.DB(), d.ClientID(), sit.ID()); err != nil {
			return storeErr(err, nil)
		}

		if err := d.MarkSynchronized(sit.ID(), detail.ID(), now); err != nil {
			return err
		}
		if err := tx.Drafts().Save(ctx, tx.DB(), d); err != nil {
			return storeErr(err, nil)
		}
		result = &FinalizeResult{PrimaryID: sit.ID(), DetailID: detail.ID()}
		return nil
	})
	if err != nil {
		if owned {
			uc.recordFailure(ctx, clientID, err)
		}
		return nil, err
	}
	return result, nil
}

// recordFailure runs after the rollback in its own transaction; it never changes the error returned to the caller.
func (uc *finalizeCommandsImpl) recordFailure(ctx context.Context, clientID uuid.UUID, cause error) {
	ctx = context.WithoutCancel(ctx)
	now := uc.clock.Now()

	recorded := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recorded = false
		d, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), clientID)
		if err != nil {
			return err
		}
		if d.IsSynchronized() {
			return nil
		}
		if err := d.MarkFailed(cause.Error(), now); err != nil {
			return err
		}
		if err := tx.Drafts().Save(ctx, tx.DB(), d); err != nil {
			return err
		}
		recorded = true
		return nil
	})
	if err != nil {
		slog.Error("failed to record finalize failure",
			"draft_client_id", clientID.String(),
			"cause", cause.Error(),
			"error", err.Error())
		return
	}
	if !recorded {
		slog.Debug("finalize failure not recorded, draft already synchronized", "draft_client_id", clientID.String())
	}
}

func replayedResult(d *draft.Draft) *FinalizeResult {
	res := &FinalizeResult{Replayed: true}
	if id := d.SituationID(); id != nil {
		res.PrimaryID = *id
	}
	if id := d.DetailID(); id != nil {
		res.DetailID = *id
	}
	return res
}
