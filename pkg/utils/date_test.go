package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_NowIn(t *testing.T) {
	instant := time.Date(2025, 7, 1, 2, 30, 0, 0, time.UTC)
	clock := FixedClock(instant)

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := clock.NowIn(newYork)
	assert.Equal(t, 30, local.Day())
	assert.Equal(t, time.June, local.Month())

	assert.Equal(t, instant, clock.NowIn(nil))

	var zero Clock
	assert.WithinDuration(t, time.Now(), zero.NowIn(time.UTC), time.Minute)
}
