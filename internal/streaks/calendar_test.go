package streaks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogicalDay_BeforeReset(t *testing.T) {
	// 02:00 GMT+1 on Feb 19 = 01:00 UTC; still Feb 18 in app time.
	now := time.Date(2026, 2, 19, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-18", LogicalDay(now))
}

func TestLogicalDay_AfterReset(t *testing.T) {
	// 04:00 GMT+1 on Feb 19 = 03:00 UTC.
	now := time.Date(2026, 2, 19, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-19", LogicalDay(now))
}

func TestLogicalDay_LateEvening(t *testing.T) {
	// 23:50 GMT+1 on Feb 18 = 22:50 UTC.
	now := time.Date(2026, 2, 18, 22, 50, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-18", LogicalDay(now))
}

func TestLogicalDay_ResetBoundary(t *testing.T) {
	// 03:30:00.000 GMT+1 on Feb 19 = 02:30 UTC. Exactly at the reset is the
	// new day; one millisecond earlier is still the old one; one later is
	// again the new one.
	boundary := time.Date(2026, 2, 19, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-02-19", LogicalDay(boundary))
	assert.Equal(t, "2026-02-18", LogicalDay(boundary.Add(-time.Millisecond)))
	assert.Equal(t, "2026-02-19", LogicalDay(boundary.Add(time.Millisecond)))
}

func TestLogicalDay_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 2, 29, 59, 999000000, time.UTC)
	assert.Equal(t, LogicalDay(now), LogicalDay(now))
}

func TestLogicalDay_MinutePrecision(t *testing.T) {
	// 03:15 GMT+1: the hour matches the reset hour but the minute is before
	// 30, so it is still yesterday.
	now := time.Date(2026, 2, 19, 2, 15, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-18", LogicalDay(now))
}

func TestPreviousNextDay(t *testing.T) {
	assert.Equal(t, "2026-02-28", PreviousDay("2026-03-01"))
	assert.Equal(t, "2026-03-01", NextDay("2026-02-28"))
	assert.Equal(t, "2025-12-31", PreviousDay("2026-01-01"))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween("2026-02-18", "2026-02-19"))
	assert.Equal(t, 3, DaysBetween("2026-02-26", "2026-03-01"))
	assert.Equal(t, -2, DaysBetween("2026-02-20", "2026-02-18"))
	assert.Equal(t, 0, DaysBetween("garbage", "2026-02-18"))
}

func TestDayWindow(t *testing.T) {
	// 22:00 UTC Feb 18 => logical day 2026-02-18, which started at
	// 03:30 GMT+1 (02:30 UTC) the same morning.
	now := time.Date(2026, 2, 18, 22, 0, 0, 0, time.UTC)
	start, end := DayWindow(now)

	assert.Equal(t, time.Date(2026, 2, 18, 2, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 19, 2, 30, 0, 0, time.UTC), end)
}
