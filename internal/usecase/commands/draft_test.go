//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/situation"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/infra"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"
	"fieldsync/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Upsert Draft Tests
// =============================================================================

func TestDraftCommands_Upsert(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	testCases := []struct {
		name          string
		kind          string
		setupMock     func(*harness, *builder.DraftBuilder)
		expectCreated bool
		expectErr     error
	}{
		{
			name: "success: first sight creates the draft",
			kind: "traffic-incident",
			setupMock: func(h *harness, b *builder.DraftBuilder) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(nil, errNotFound)
				h.drafts.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, d *draft.Draft) error {
						assert.Equal(t, draft.KindTrafficIncident, d.Kind())
						assert.Equal(t, owner, d.OwnerID())
						return nil
					})
			},
			expectCreated: true,
		},
		{
			name: "success: pending draft payload is replaced",
			kind: "PATROL",
			setupMock: func(h *harness, b *builder.DraftBuilder) {
				existing := b.BuildDomain()
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(existing, nil)
				h.drafts.EXPECT().Save(ctx, gomock.Any(), existing).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, d *draft.Draft) error {
						assert.Equal(t, draft.KindPatrol, d.Kind())
						return nil
					})
			},
		},
		{
			name: "error: synchronized draft is immutable",
			kind: "PATROL",
			setupMock: func(h *harness, b *builder.DraftBuilder) {
				b.WithStatus(draft.StatusSynchronized)
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(b.BuildDomain(), nil)
			},
			expectErr: draft.ErrAlreadySynchronized,
		},
		{
			name: "error: draft owned by another user",
			kind: "PATROL",
			setupMock: func(h *harness, b *builder.DraftBuilder) {
				b.WithOwner(uuid.New())
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(b.BuildDomain(), nil)
			},
			expectErr: draft.ErrNotOwner,
		},
		{
			name:      "error: unknown kind",
			kind:      "PARADE",
			setupMock: func(*harness, *builder.DraftBuilder) {},
			expectErr: draft.ErrInvalidKind,
		},
		{
			name: "error: concurrent create",
			kind: "PATROL",
			setupMock: func(h *harness, b *builder.DraftBuilder) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(nil, errNotFound)
				h.drafts.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(errDuplicate)
			},
			expectErr: errs.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHarness(ctrl)
			b := builder.NewDraftBuilder().WithOwner(owner)
			tc.setupMock(h, b)

			uc := commands.NewDraftCommands(h.uow, h.clock)
			res, err := uc.Upsert(ctx, commands.UpsertDraftInput{
				ClientID: b.ClientID,
				Kind:     tc.kind,
				Payload:  b.Payload,
			}, callerFor(owner, user.RoleCrew))

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ClientID, res.ClientID)
			assert.Equal(t, tc.expectCreated, res.Created)
			assert.Equal(t, draft.StatusLocal, res.Status)
		})
	}
}

// =============================================================================
// Attach Evidence Tests
// =============================================================================

func TestEvidenceCommands_Attach(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	two := int32(2)

	testCases := []struct {
		name          string
		in            func(draftID uuid.UUID) commands.AttachEvidenceInput
		setupMock     func(*harness, *draft.Draft)
		expectOrdinal *int32
		expectTally   evidence.Tally
		refreshed     bool
		expectErr     error
	}{
		{
			name: "success: next image slot ignores the hint",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				hint := int32(1)
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "image", StorageRef: "s3://bucket/a.jpg", OrdinalHint: &hint}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/a.jpg").Return(nil, errNotFound)
				h.evidence.EXPECT().Occupancy(ctx, gomock.Any(), d.ClientID()).Return(evidence.Occupancy{Images: 1, MaxOrdinal: 1}, nil)
				h.evidence.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
			expectOrdinal: &two,
			expectTally:   evidence.Tally{Fotos: 2},
		},
		{
			name: "success: video completes the set",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "VIDEO", StorageRef: "s3://bucket/v.mp4"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/v.mp4").Return(nil, errNotFound)
				h.evidence.EXPECT().Occupancy(ctx, gomock.Any(), d.ClientID()).Return(evidence.Occupancy{Images: 3, MaxOrdinal: 3}, nil)
				h.evidence.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
			expectTally: evidence.Tally{Fotos: 3, Videos: 1, Completa: true},
		},
		{
			name: "success: same reference on the same draft refreshes metadata",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "IMAGE", StorageRef: "s3://bucket/a.jpg"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				one := int32(1)
				item := evidence.ReconstructItem(uuid.New(), d.ClientID(), nil, evidence.KindImage, &one, "s3://bucket/a.jpg",
					evidence.Metadata{}, evidence.StatusUploaded, owner, fixedNow)
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/a.jpg").Return(item, nil)
				h.evidence.EXPECT().UpdateMetadata(ctx, gomock.Any(), item).Return(nil)
				h.evidence.EXPECT().Occupancy(ctx, gomock.Any(), d.ClientID()).Return(evidence.Occupancy{Images: 1, MaxOrdinal: 1}, nil)
			},
			expectOrdinal: func() *int32 { v := int32(1); return &v }(),
			expectTally:   evidence.Tally{Fotos: 1},
			refreshed:     true,
		},
		{
			name: "error: reference attached to another draft",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "IMAGE", StorageRef: "s3://bucket/a.jpg"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				item := evidence.ReconstructItem(uuid.New(), uuid.New(), nil, evidence.KindImage, nil, "s3://bucket/a.jpg",
					evidence.Metadata{}, evidence.StatusUploaded, owner, fixedNow)
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/a.jpg").Return(item, nil)
			},
			expectErr: evidence.ErrStorageRefTaken,
		},
		{
			name: "error: fourth image",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "IMAGE", StorageRef: "s3://bucket/d.jpg"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/d.jpg").Return(nil, errNotFound)
				h.evidence.EXPECT().Occupancy(ctx, gomock.Any(), d.ClientID()).Return(evidence.Occupancy{Images: 3, MaxOrdinal: 3}, nil)
			},
			expectErr: evidence.ErrImageCapacity,
		},
		{
			name: "error: second video",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "VIDEO", StorageRef: "s3://bucket/w.mp4"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
				h.evidence.EXPECT().FindByStorageRef(ctx, gomock.Any(), "s3://bucket/w.mp4").Return(nil, errNotFound)
				h.evidence.EXPECT().Occupancy(ctx, gomock.Any(), d.ClientID()).Return(evidence.Occupancy{Videos: 1}, nil)
			},
			expectErr: evidence.ErrVideoCapacity,
		},
		{
			name: "error: hint out of range",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				hint := int32(4)
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "IMAGE", StorageRef: "x", OrdinalHint: &hint}
			},
			setupMock: func(*harness, *draft.Draft) {},
			expectErr: evidence.ErrInvalidOrdinalHint,
		},
		{
			name: "error: unknown draft",
			in: func(id uuid.UUID) commands.AttachEvidenceInput {
				return commands.AttachEvidenceInput{DraftClientID: id, Kind: "IMAGE", StorageRef: "x"}
			},
			setupMock: func(h *harness, d *draft.Draft) {
				h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(nil, errNotFound)
			},
			expectErr: queries.ErrDraftNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHarness(ctrl)
			d := builder.NewDraftBuilder().WithOwner(owner).BuildDomain()
			tc.setupMock(h, d)

			uc := commands.NewEvidenceCommands(h.uow, h.clock)
			res, err := uc.Attach(ctx, tc.in(d.ClientID()), callerFor(owner, user.RoleCrew))

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOrdinal, res.Ordinal)
			assert.Equal(t, tc.expectTally, res.Completeness)
			assert.Equal(t, tc.refreshed, res.Refreshed)
		})
	}
}

func TestEvidenceCommands_Attach_ForeignDraftLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(ctrl)
	d := builder.NewDraftBuilder().BuildDomain()
	h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), d.ClientID()).Return(d, nil)

	uc := commands.NewEvidenceCommands(h.uow, h.clock)
	_, err := uc.Attach(context.Background(), commands.AttachEvidenceInput{
		DraftClientID: d.ClientID(), Kind: "IMAGE", StorageRef: "s3://x",
	}, callerFor(uuid.New(), user.RoleCrew))

	assert.ErrorIs(t, err, queries.ErrDraftNotFound)
}

// =============================================================================
// Finalize Tests
// =============================================================================

func TestFinalizeCommands_Finalize(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success: creates situation and detail then links evidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		d := builder.NewDraftBuilder().WithOwner(owner).BuildDomain()
		code := situation.DeriveCode(d.ClientID())

		var sit *situation.Situation
		var detail *situation.Detail
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
		h.situations.EXPECT().FindByCode(ctx, gomock.Any(), code).Return(nil, errNotFound)
		h.situations.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, s *situation.Situation) error {
				sit = s
				return nil
			})
		h.situations.EXPECT().CreateDetail(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, dt *situation.Detail) error {
				detail = dt
				assert.Equal(t, situation.DetailIncident, dt.Type())
				var data map[string]any
				require.NoError(t, json.Unmarshal(dt.Data(), &data))
				assert.Equal(t, "COLLISION", data["incidentType"])
				return nil
			})
		h.evidence.EXPECT().LinkToSituation(ctx, gomock.Any(), d.ClientID(), gomock.Any()).Return(int64(2), nil)
		h.drafts.EXPECT().Save(ctx, gomock.Any(), d).Return(nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		res, err := uc.Finalize(ctx, d.ClientID(), callerFor(owner, user.RoleCrew))

		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Equal(t, sit.ID(), res.PrimaryID)
		assert.Equal(t, detail.ID(), res.DetailID)
		assert.Equal(t, draft.StatusSynchronized, d.Status())
		assert.Equal(t, 42.5, *sit.Km())
	})

	t.Run("success: synchronized draft replays its records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		d := builder.NewDraftBuilder().WithOwner(owner).WithStatus(draft.StatusSynchronized).BuildDomain()
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		res, err := uc.Finalize(ctx, d.ClientID(), callerFor(owner, user.RoleCrew))

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, *d.SituationID(), res.PrimaryID)
		assert.Equal(t, *d.DetailID(), res.DetailID)
	})

	t.Run("error: invalid payload is recorded on the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		b := builder.NewDraftBuilder().WithOwner(owner).WithPayload(`{"incident":{"injured":1}}`)
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(b.BuildDomain(), nil)
		reloaded := b.BuildDomain()
		h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ClientID).Return(reloaded, nil)
		h.drafts.EXPECT().Save(gomock.Any(), gomock.Any(), reloaded).Return(nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, b.ClientID, callerFor(owner, user.RoleCrew))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, draft.StatusError, reloaded.Status())
		assert.EqualValues(t, 1, reloaded.Attempts())
		require.NotNil(t, reloaded.ErrorDetail())
		assert.Equal(t, err.Error(), *reloaded.ErrorDetail())
		assert.Equal(t, &fixedNow, reloaded.LastAttemptAt())
	})

	t.Run("error: long failure detail is truncated before it is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		b := builder.NewDraftBuilder().WithOwner(owner)
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(b.BuildDomain(), nil)
		h.situations.EXPECT().FindByCode(ctx, gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr(strings.Repeat("ü", 800), nil, infra.KindDBFailure))
		reloaded := b.BuildDomain()
		h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ClientID).Return(reloaded, nil)
		h.drafts.EXPECT().Save(gomock.Any(), gomock.Any(), reloaded).Return(nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, b.ClientID, callerFor(owner, user.RoleCrew))

		require.Error(t, err)
		require.NotNil(t, reloaded.ErrorDetail())
		assert.LessOrEqual(t, len(*reloaded.ErrorDetail()), 1000)
		assert.True(t, utf8.ValidString(*reloaded.ErrorDetail()))
	})

	t.Run("error: draft synchronized meanwhile keeps its state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		b := builder.NewDraftBuilder().WithOwner(owner)
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), b.ClientID).Return(b.BuildDomain(), nil)
		h.situations.EXPECT().FindByCode(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBDown)
		synced := b.WithStatus(draft.StatusSynchronized).BuildDomain()
		h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ClientID).Return(synced, nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, b.ClientID, callerFor(owner, user.RoleCrew))

		assert.True(t, errs.Is(err, errs.ErrTransientStore))
		assert.Equal(t, draft.StatusSynchronized, synced.Status())
		assert.Nil(t, synced.ErrorDetail())
	})

	t.Run("error: situation code already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		d := builder.NewDraftBuilder().WithOwner(owner).BuildDomain()
		existing := situation.NewSituation(uuid.New(), "PATROL", situation.Input{Code: "SIT-1"}, owner, fixedNow)
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
		h.situations.EXPECT().FindByCode(ctx, gomock.Any(), gomock.Any()).Return(existing, nil)
		h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), d.ClientID()).Return(d, nil)
		h.drafts.EXPECT().Save(gomock.Any(), gomock.Any(), d).Return(nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, d.ClientID(), callerFor(owner, user.RoleCrew))

		assert.ErrorIs(t, err, situation.ErrCodeTaken)
		ref, ok := errs.ResourceOf(err)
		require.True(t, ok)
		assert.Equal(t, existing.ID().String(), ref.ID)
	})

	t.Run("error: failed failure bookkeeping keeps the original error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		d := builder.NewDraftBuilder().WithOwner(owner).BuildDomain()
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)
		h.situations.EXPECT().FindByCode(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBDown)
		h.drafts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), d.ClientID()).Return(nil, errDBDown)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, d.ClientID(), callerFor(owner, user.RoleCrew))

		assert.True(t, errs.Is(err, errs.ErrTransientStore))
	})

	t.Run("error: foreign draft is not touched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHarness(ctrl)
		d := builder.NewDraftBuilder().BuildDomain()
		h.drafts.EXPECT().FindForUpdate(ctx, gomock.Any(), d.ClientID()).Return(d, nil)

		uc := commands.NewFinalizeCommands(h.uow, h.clock)
		_, err := uc.Finalize(ctx, d.ClientID(), callerFor(owner, user.RoleCrew))

		assert.ErrorIs(t, err, queries.ErrDraftNotFound)
	})
}
