package commands

import (
	"context"
	"strings"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/queries"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type AttachEvidenceInput struct {
	DraftClientID uuid.UUID
	Kind          string
	StorageRef    string
	Metadata      evidence.Metadata
	OrdinalHint   *int32
}

type AttachEvidenceResult struct {
	ID           uuid.UUID
	Ordinal      *int32
	Completeness evidence.Tally
	// Refreshed is set when the storage reference was already attached to this draft.
	Refreshed bool
}

type EvidenceCommands interface {
	Attach(ctx context.Context, in AttachEvidenceInput, caller Caller) (*AttachEvidenceResult, error)
}

type evidenceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEvidenceCommands(uow shared.UnitOfWork, clk clock.Clock) EvidenceCommands {
	return &evidenceCommandsImpl{uow: uow, clock: clk}
}

// Attach assigns ordinals under the draft row lock; the hint is validated but never trusted.
func (uc *evidenceCommandsImpl) Attach(ctx context.Context, in AttachEvidenceInput, caller Caller) (*AttachEvidenceResult, error) {
	kind, err := evidence.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if err := evidence.ValidateOrdinalHint(in.OrdinalHint); err != nil {
		return nil, err
	}
	ref := strings.TrimSpace(in.StorageRef)
	if ref == "" {
		return nil, evidence.ErrEmptyStorageRef
	}
	now := uc.clock.Now()

	var result *AttachEvidenceResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Drafts().FindForUpdate(ctx, tx.DB(), in.DraftClientID)
		if err != nil {
			return storeErr(err, queries.ErrDraftNotFound)
		}
		if !d.OwnedBy(caller.UserID) {
			return queries.ErrDraftNotFound
		}
		if err := d.CheckOpen(); err != nil {
			return err
		}

		existing, err := tx.Evidence().FindByStorageRef(ctx, tx.DB(), ref)
		switch {
		case err == nil:
			if existing.DraftClientID() != d.ClientID() {
				return errs.WithResource(evidence.ErrStorageRefTaken, "evidence", existing.ID().String())
			}
			if err := existing.Refresh(in.Metadata); err != nil {
				return err
			}
			if err := tx.Evidence().UpdateMetadata(ctx, tx.DB(), existing); err != nil {
				return storeErr(err, nil)
			}
			occ, err := tx.Evidence().Occupancy(ctx, tx.DB(), d.ClientID())
			if err != nil {
				return storeErr(err, nil)
			}
			result = &AttachEvidenceResult{
				ID:           existing.ID(),
				Ordinal:      existing.Ordinal(),
				Completeness: evidence.NewTally(occ.Images, occ.Videos),
				Refreshed:    true,
			}
			return nil
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return storeErr(err, nil)
		}

		occ, err := tx.Evidence().Occupancy(ctx, tx.DB(), d.ClientID())
		if err != nil {
			return storeErr(err, nil)
		}
		ordinal, err := occ.NextOrdinal(kind)
		if err != nil {
			return errs.WithResource(err, "draft", d.ClientID().String())
		}

		item, err := evidence.NewItem(d.ClientID(), kind, ref, in.Metadata, ordinal, caller.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.Evidence().Create(ctx, tx.DB(), item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithResource(evidence.ErrStorageRefTaken, "evidence", ref)
			}
			return storeErr(err, nil)
		}

		images, videos := occ.Images, occ.Videos
		if kind == evidence.KindImage {
			images++
		} else {
			videos++
		}
		result = &AttachEvidenceResult{
			ID:           item.ID(),
			Ordinal:      item.Ordinal(),
			Completeness: evidence.NewTally(images, videos),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
