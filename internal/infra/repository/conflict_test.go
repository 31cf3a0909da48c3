//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/infra"
	"fieldsync/internal/infra/repository"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/usecase/shared"
	"fieldsync/tests/common/builder"
	repositorymock "fieldsync/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConflictRepository_UpsertPending(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		row         sqlc.UpsertPendingConflictRow
		returnErr   error
		wantCreated bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: new case", row: sqlc.UpsertPendingConflictRow{Created: true}, wantCreated: true},
		{name: "success: open case is reused", row: sqlc.UpsertPendingConflictRow{Created: false}},
		{name: "error: database failure", returnErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockConflictWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewConflictRepository(mockQueries, mockDB)
			c := builder.NewConflictBuilder().BuildDomain()
			tc.row.ID = c.ID()

			mockQueries.EXPECT().UpsertPendingConflict(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertPendingConflictParams) (sqlc.UpsertPendingConflictRow, error) {
					assert.Equal(t, c.NaturalKey(), arg.NaturalKey)
					assert.Equal(t, conflict.KindConcurrentEdit.String(), arg.Kind)
					var diffs []map[string]any
					require.NoError(t, json.Unmarshal(arg.Differences, &diffs))
					assert.Len(t, diffs, 1)
					assert.False(t, arg.SituationID.Valid)
					return tc.row, tc.returnErr
				})

			id, created, err := repo.UpsertPending(ctx, mockDB, c)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.ID(), id)
			assert.Equal(t, tc.wantCreated, created)
		})
	}
}

func TestConflictRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: differences survive the round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockConflictWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewConflictRepository(mockQueries, mockDB)
		b := builder.NewConflictBuilder()
		mockQueries.EXPECT().GetConflictCaseForUpdate(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		c, err := repo.FindForUpdate(ctx, mockDB, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.NaturalKey, c.NaturalKey())
		assert.Equal(t, conflict.StatusPending, c.Status())
		require.Len(t, c.Differences(), 1)
		assert.Equal(t, "km", c.Differences()[0].Field)
	})

	t.Run("error: unknown case is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockConflictWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewConflictRepository(mockQueries, mockDB)
		id := uuid.New()
		mockQueries.EXPECT().GetConflictCaseForUpdate(ctx, mockDB, id).Return(sqlc.ConflictCases{}, pgx.ErrNoRows)

		c, err := repo.FindForUpdate(ctx, mockDB, id)

		assert.Nil(t, c)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	rec := shared.IdempotencyRecord{
		Key:            uuid.New(),
		UserID:         &userID,
		Endpoint:       "POST /api/drafts/:id/finalize",
		RequestHash:    "abc",
		ResponseStatus: 200,
		ResponseBody:   []byte(`{"replayed":false}`),
		CreatedAt:      now,
		ExpiresAt:      now.Add(24 * time.Hour),
	}

	testCases := []struct {
		name       string
		rows       int64
		wantStored bool
	}{
		{name: "success: first writer stores the record", rows: 1, wantStored: true},
		{name: "success: later writer leaves the record as is", rows: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, rec.Key, arg.Key)
					assert.Equal(t, [16]byte(userID), arg.UserID.Bytes)
					assert.Equal(t, int32(200), arg.ResponseStatus)
					assert.True(t, arg.ExpiresAt.Time.Equal(rec.ExpiresAt))
					return tc.rows, nil
				})

			stored, err := repo.Save(ctx, mockDB, rec)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStored, stored)
		})
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)
	mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB, pgtype.Timestamptz{Time: now, Valid: true}).Return(int64(7), nil)

	n, err := repo.DeleteExpired(ctx, mockDB, now)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
