package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEdgesAtMidMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	edges := EdgesAt(now)
	require.Equal(t, "2024-06-15", edges.Today)
	require.Equal(t, "2024-06-09", edges.WeekStart)
	require.Equal(t, "2024-06-01", edges.MonthStart)
	require.Equal(t, "2024-01-01", edges.YearStart)
}

func TestEdgesAtMonthStart(t *testing.T) {
	// The trailing week reaches back into the previous month; month and
	// year edges stay calendar-aligned.
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	edges := EdgesAt(now)
	require.Equal(t, "2024-03-01", edges.Today)
	require.Equal(t, "2024-02-24", edges.WeekStart)
	require.Equal(t, "2024-03-01", edges.MonthStart)
	require.Equal(t, "2024-01-01", edges.YearStart)
}

func TestEdgesAtYearStart(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 30, 0, 0, time.UTC)

	edges := EdgesAt(now)
	require.Equal(t, "2025-01-01", edges.Today)
	require.Equal(t, "2024-12-26", edges.WeekStart)
	require.Equal(t, "2025-01-01", edges.MonthStart)
	require.Equal(t, "2025-01-01", edges.YearStart)
}

func TestDateOfUnix(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.June, 15, 1, 0, 0, 0, loc)

	// 2024-06-14 20:00 UTC is already past midnight in IST; the bucket
	// must follow the clock's locale, not UTC.
	stamp := time.Date(2024, time.June, 14, 20, 0, 0, 0, time.UTC).Unix()
	require.Equal(t, "2024-06-15", DateOfUnix(stamp, now))
}
