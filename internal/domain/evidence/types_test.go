//go:build unit

package evidence_test

import (
	"testing"
	"time"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyNextOrdinal(t *testing.T) {
	cases := []struct {
		name    string
		occ     evidence.Occupancy
		kind    evidence.Kind
		want    *int32
		wantErr error
	}{
		{name: "first image", occ: evidence.Occupancy{}, kind: evidence.KindImage, want: ptr.To[int32](1)},
		{name: "max plus one", occ: evidence.Occupancy{Images: 2, MaxOrdinal: 2}, kind: evidence.KindImage, want: ptr.To[int32](3)},
		{name: "gap is not refilled", occ: evidence.Occupancy{Images: 1, MaxOrdinal: 2}, kind: evidence.KindImage, want: ptr.To[int32](3)},
		{name: "fourth image", occ: evidence.Occupancy{Images: 3, MaxOrdinal: 3}, kind: evidence.KindImage, wantErr: evidence.ErrImageCapacity},
		{name: "ordinal 3 taken with fewer images", occ: evidence.Occupancy{Images: 1, MaxOrdinal: 3}, kind: evidence.KindImage, wantErr: evidence.ErrImageCapacity},
		{name: "first video", occ: evidence.Occupancy{Images: 3, MaxOrdinal: 3}, kind: evidence.KindVideo},
		{name: "second video", occ: evidence.Occupancy{Videos: 1}, kind: evidence.KindVideo, wantErr: evidence.ErrVideoCapacity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.occ.NextOrdinal(c.kind)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				assert.True(t, errs.Is(err, errs.ErrConflict))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTally(t *testing.T) {
	assert.Equal(t, evidence.Tally{Fotos: 0, Videos: 0}, evidence.NewTally(0, 0))
	assert.Equal(t, evidence.Tally{Fotos: 3, Videos: 0}, evidence.NewTally(3, 0))
	assert.Equal(t, evidence.Tally{Fotos: 2, Videos: 1}, evidence.NewTally(2, 1))
	assert.Equal(t, evidence.Tally{Fotos: 3, Videos: 1, Completa: true}, evidence.NewTally(3, 1))
}

func TestParseKind(t *testing.T) {
	k, err := evidence.ParseKind("image")
	require.NoError(t, err)
	assert.Equal(t, evidence.KindImage, k)

	_, err = evidence.ParseKind("AUDIO")
	require.ErrorIs(t, err, evidence.ErrInvalidKind)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestValidateOrdinalHint(t *testing.T) {
	assert.NoError(t, evidence.ValidateOrdinalHint(nil))
	assert.NoError(t, evidence.ValidateOrdinalHint(ptr.To[int32](1)))
	assert.NoError(t, evidence.ValidateOrdinalHint(ptr.To[int32](3)))
	assert.ErrorIs(t, evidence.ValidateOrdinalHint(ptr.To[int32](0)), evidence.ErrInvalidOrdinalHint)
	assert.ErrorIs(t, evidence.ValidateOrdinalHint(ptr.To[int32](4)), evidence.ErrInvalidOrdinalHint)
}

func TestItem(t *testing.T) {
	now := time.Now()
	draftID := uuid.New()

	t.Run("video drops ordinal", func(t *testing.T) {
		item, err := evidence.NewItem(draftID, evidence.KindVideo, "blob/v1", evidence.Metadata{}, ptr.To[int32](2), uuid.New(), now)
		require.NoError(t, err)
		assert.Nil(t, item.Ordinal())
		assert.Equal(t, evidence.StatusUploaded, item.Status())
	})

	t.Run("blank storage ref", func(t *testing.T) {
		_, err := evidence.NewItem(draftID, evidence.KindImage, "  ", evidence.Metadata{}, ptr.To[int32](1), uuid.New(), now)
		require.ErrorIs(t, err, evidence.ErrEmptyStorageRef)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := evidence.NewItem(draftID, evidence.KindImage, "blob/1", evidence.Metadata{SizeBytes: ptr.To[int64](-5)}, ptr.To[int32](1), uuid.New(), now)
		require.ErrorIs(t, err, evidence.ErrInvalidMetadata)
	})

	t.Run("refresh keeps unset metadata", func(t *testing.T) {
		item, err := evidence.NewItem(draftID, evidence.KindImage, "blob/1", evidence.Metadata{Width: ptr.To[int32](640), Height: ptr.To[int32](480)}, ptr.To[int32](1), uuid.New(), now)
		require.NoError(t, err)

		require.NoError(t, item.Refresh(evidence.Metadata{PreviewRef: ptr.To("blob/1.thumb"), Width: ptr.To[int32](1280)}))
		meta := item.Metadata()
		assert.Equal(t, int32(1280), *meta.Width)
		assert.Equal(t, int32(480), *meta.Height)
		assert.Equal(t, "blob/1.thumb", *meta.PreviewRef)
		assert.Equal(t, ptr.To[int32](1), item.Ordinal())
	})
}
