package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestComputeStreak_NoReads(t *testing.T) {
	summary := ComputeStreak(nil, time.Now().UTC())

	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, 0, summary.LongestStreak)
	assert.Equal(t, 0, summary.TotalDaysRead)
	assert.Nil(t, summary.LastReadDate)
}

func TestComputeStreak_ReadTodayExtendsStreak(t *testing.T) {
	now := day(t, "2026-08-28")
	days := []time.Time{
		day(t, "2026-08-28"),
		day(t, "2026-08-27"),
		day(t, "2026-08-26"),
	}

	summary := ComputeStreak(days, now)

	assert.Equal(t, 3, summary.CurrentStreak)
	assert.Equal(t, 3, summary.LongestStreak)
	assert.Equal(t, 3, summary.TotalDaysRead)
	require.NotNil(t, summary.LastReadDate)
	assert.Equal(t, day(t, "2026-08-28"), *summary.LastReadDate)
}

func TestComputeStreak_YesterdayStillCounts(t *testing.T) {
	now := day(t, "2026-08-28")
	days := []time.Time{
		day(t, "2026-08-27"),
		day(t, "2026-08-26"),
	}

	summary := ComputeStreak(days, now)

	assert.Equal(t, 2, summary.CurrentStreak)
}

func TestComputeStreak_MissedDayResetsCurrent(t *testing.T) {
	now := day(t, "2026-08-28")
	days := []time.Time{
		day(t, "2026-08-25"),
		day(t, "2026-08-24"),
		day(t, "2026-08-23"),
	}

	summary := ComputeStreak(days, now)

	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, 3, summary.LongestStreak)
}

func TestComputeStreak_LongestRunInHistory(t *testing.T) {
	now := day(t, "2026-08-28")
	days := []time.Time{
		day(t, "2026-08-28"),
		day(t, "2026-08-27"),
		// gap
		day(t, "2026-08-20"),
		day(t, "2026-08-19"),
		day(t, "2026-08-18"),
		day(t, "2026-08-17"),
		day(t, "2026-08-16"),
	}

	summary := ComputeStreak(days, now)

	assert.Equal(t, 2, summary.CurrentStreak)
	assert.Equal(t, 5, summary.LongestStreak)
	assert.Equal(t, 7, summary.TotalDaysRead)
}
