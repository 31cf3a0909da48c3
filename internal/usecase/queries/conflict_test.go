//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/queries"
	queriesmock "fieldsync/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func conflictViews(n int, newest time.Time) []*queries.ConflictView {
	views := make([]*queries.ConflictView, n)
	for i := range views {
		views[i] = &queries.ConflictView{ID: uuid.New(), Status: "PENDING", CreatedAt: newest.Add(-time.Duration(i) * time.Minute)}
	}
	return views
}

func TestConflictQueries_List(t *testing.T) {
	ctx := context.Background()
	newest := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	t.Run("success: an extra row yields a cursor for the next page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockConflictReadStore(ctrl)
		q := queries.NewConflictQueries(store, 20)
		rows := conflictViews(3, newest)

		store.EXPECT().List(ctx, "PENDING", (*time.Time)(nil), uuid.Nil, int32(3)).Return(rows, nil)

		items, next, err := q.List(ctx, "", nil, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		// the cursor resumes strictly after the last returned row
		store.EXPECT().List(ctx, "PENDING", gomock.Any(), rows[1].ID, int32(3)).
			DoAndReturn(func(_ context.Context, _ string, after *time.Time, _ uuid.UUID, _ int32) ([]*queries.ConflictView, error) {
				require.NotNil(t, after)
				assert.True(t, after.Equal(rows[1].CreatedAt))
				return rows[2:], nil
			})

		page2, last, err := q.List(ctx, "pending", next, 2)

		require.NoError(t, err)
		assert.Len(t, page2, 1)
		assert.Nil(t, last)
	})

	t.Run("error: cursor from another status filter is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockConflictReadStore(ctrl)
		q := queries.NewConflictQueries(store, 20)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor("PENDING", newest, uuid.New())}

		_, _, err := q.List(ctx, "RESOLVED", cursor, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("error: garbage cursor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockConflictReadStore(ctrl)
		q := queries.NewConflictQueries(store, 20)

		_, _, err := q.List(ctx, "", &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("error: unknown status is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockConflictReadStore(ctrl)
		q := queries.NewConflictQueries(store, 20)

		_, _, err := q.List(ctx, "OPEN", nil, 10)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: store failure is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockConflictReadStore(ctrl)
		q := queries.NewConflictQueries(store, 20)
		store.EXPECT().List(ctx, "PENDING", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

		_, _, err := q.List(ctx, "", nil, 10)

		assert.True(t, errs.Is(err, errs.ErrTransientStore))
	})
}

func TestConflictQueries_Get(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockConflictReadStore(ctrl)
	q := queries.NewConflictQueries(store, 20)
	id := uuid.New()

	store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("failed to get conflict case", pgx.ErrNoRows))

	_, err := q.Get(ctx, id)

	assert.ErrorIs(t, err, queries.ErrConflictCaseNotFound)
}

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 5, 4, 8, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor("RESOLVED", at, id), "RESOLVED")

	require.NoError(t, err)
	assert.True(t, gotAt.Equal(at))
	assert.Equal(t, id, gotID)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
