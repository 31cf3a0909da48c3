//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldsync/internal/infra"
	"fieldsync/internal/infra/readstore"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	readstoremock "fieldsync/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestDraftReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockDraftReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: draft found",
			setupMock: func(mock *readstoremock.MockDraftReadQueries) {
				mock.EXPECT().GetDraft(ctx, gomock.Any(), clientID).Return(sqlc.Drafts{
					ClientID:      clientID,
					Kind:          "TRAFFIC_INCIDENT",
					Payload:       []byte(`{"km":1}`),
					OwnerID:       uuid.New(),
					Status:        "ERROR",
					ErrorDetail:   pgtype.Text{String: "km is required", Valid: true},
					Attempts:      2,
					LastAttemptAt: ts(now),
					CreatedAt:     ts(now.Add(-time.Hour)),
					UpdatedAt:     ts(now),
				}, nil)
			},
		},
		{
			name: "error: draft not found",
			setupMock: func(mock *readstoremock.MockDraftReadQueries) {
				mock.EXPECT().GetDraft(ctx, gomock.Any(), clientID).Return(sqlc.Drafts{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockDraftReadQueries) {
				mock.EXPECT().GetDraft(ctx, gomock.Any(), clientID).Return(sqlc.Drafts{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockDraftReadQueries(ctrl)
			store := readstore.NewDraftReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindByID(ctx, clientID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, clientID, view.ClientID)
			require.NotNil(t, view.ErrorDetail)
			assert.Equal(t, "km is required", *view.ErrorDetail)
			require.NotNil(t, view.LastAttemptAt)
			assert.True(t, view.LastAttemptAt.Equal(now))
			assert.Nil(t, view.SituationID)
		})
	}
}

// =============================================================================
// ListEvidence Tests
// =============================================================================

func TestDraftReadStore_ListEvidence(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockDraftReadQueries(ctrl)
	store := readstore.NewDraftReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListEvidenceByDraft(ctx, gomock.Any(), clientID).Return([]sqlc.EvidenceItems{
		{ID: uuid.New(), Kind: "IMAGE", Ordinal: pgtype.Int4{Int32: 1, Valid: true}, StorageRef: "s3://a.jpg", Width: pgtype.Int4{Int32: 800, Valid: true}, Status: "LOCAL"},
		{ID: uuid.New(), Kind: "VIDEO", StorageRef: "s3://b.mp4", DurationSeconds: pgtype.Int4{Int32: 12, Valid: true}, SizeBytes: pgtype.Int8{Int64: 1 << 20, Valid: true}, Status: "LOCAL"},
	}, nil)

	items, err := store.ListEvidence(ctx, clientID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Ordinal)
	assert.Equal(t, int32(1), *items[0].Ordinal)
	assert.Equal(t, int32(800), *items[0].Width)
	assert.Nil(t, items[1].Ordinal)
	assert.Equal(t, int32(12), *items[1].DurationSeconds)
	assert.Equal(t, int64(1<<20), *items[1].SizeBytes)
}

// =============================================================================
// ListPendingByOwner Tests
// =============================================================================

func TestDraftReadStore_ListPendingByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success: completeness is derived from counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDraftReadQueries(ctrl)
		store := readstore.NewDraftReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListPendingDraftsByOwner(ctx, gomock.Any(), ownerID).Return([]sqlc.ListPendingDraftsByOwnerRow{
			{ClientID: uuid.New(), Kind: "PATROL", Status: "LOCAL", ImageCount: 3, VideoCount: 1},
			{ClientID: uuid.New(), Kind: "PATROL", Status: "ERROR", ImageCount: 2},
		}, nil)

		items, err := store.ListPendingByOwner(ctx, ownerID)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].Completeness.Completa)
		assert.Equal(t, 3, items[0].Completeness.Fotos)
		assert.False(t, items[1].Completeness.Completa)
	})

	t.Run("success: empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDraftReadQueries(ctrl)
		store := readstore.NewDraftReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListPendingDraftsByOwner(ctx, gomock.Any(), ownerID).Return(nil, nil)

		items, err := store.ListPendingByOwner(ctx, ownerID)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDraftReadQueries(ctrl)
		store := readstore.NewDraftReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListPendingDraftsByOwner(ctx, gomock.Any(), ownerID).Return(nil, errDBConnectionLost)

		_, err := store.ListPendingByOwner(ctx, ownerID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
