//go:build unit

package clock_test

import (
	"testing"
	"time"

	"fieldsync/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2026, 5, 4, 5, 0, 0, 123456789, loc)

	got := clock.Normalize(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123456000, got.Nanosecond())
	assert.True(t, got.Equal(time.Date(2026, 5, 4, 8, 0, 0, 123456000, time.UTC)))
}

func TestFrozenClock_Advance(t *testing.T) {
	start := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	c := clock.NewFrozenClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(15*time.Minute), c.Advance(15*time.Minute))
	assert.Equal(t, start.Add(15*time.Minute), c.Now())
}

func TestSystemClock_IsUTC(t *testing.T) {
	now := clock.NewSystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(clock.Precision))
}
