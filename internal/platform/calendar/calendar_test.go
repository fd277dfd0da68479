package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAddMonths_ClampsToLastDayOfMonth(t *testing.T) {
	cases := []struct {
		from   string
		months int
		want   string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", 1, "2024-04-30"},
		{"2024-11-15", 2, "2025-01-15"},
		{"2024-12-31", 18, "2026-06-30"},
		{"2025-01-01", 9, "2025-10-01"},
		{"2025-03-31", -1, "2025-02-28"},
	}
	for _, tc := range cases {
		got := AddMonths(date(t, tc.from), tc.months)
		assert.Equal(t, tc.want, got.Format(time.DateOnly), "%s + %dm", tc.from, tc.months)
	}
}

func TestAddYears_LeapDay(t *testing.T) {
	leap := date(t, "2024-02-29")

	assert.Equal(t, "2025-02-28", AddYears(leap, 1).Format(time.DateOnly))
	assert.Equal(t, "2029-02-28", AddYears(leap, 5).Format(time.DateOnly))
	assert.Equal(t, "2034-02-28", AddYears(leap, 10).Format(time.DateOnly))
	assert.Equal(t, "2040-02-29", AddYears(leap, 16).Format(time.DateOnly))
}

func TestDateOf_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2025, 1, 1, 21, 30, 0, 0, loc) // 2025-01-02 02:30 UTC

	got := DateOf(in)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := date(t, "2025-01-01")
	b := time.Date(2025, 1, 11, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysBetween(a, b))
	assert.Equal(t, -10, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a.Add(5*time.Hour)))
}
