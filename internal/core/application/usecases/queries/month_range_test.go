package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthToDate(t *testing.T) {
	now := time.Date(2026, time.March, 17, 14, 30, 0, 0, time.UTC)

	period, err := monthToDate(now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), period.Start())
	assert.Equal(t, time.Date(2026, time.March, 17, 23, 59, 59, 999000000, time.UTC), period.End())
	assert.True(t, period.Contains(now))
}

func TestMonthToDate_FirstDayOfMonth(t *testing.T) {
	now := time.Date(2026, time.July, 1, 0, 0, 0, 1, time.UTC)

	period, err := monthToDate(now)
	require.NoError(t, err)

	assert.True(t, period.Contains(now))
	assert.Equal(t, time.July, period.Start().Month())
}
