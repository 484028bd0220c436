package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_Valid(t *testing.T) {
	d, err := ParseDay("2026-02-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.UTC, d.Location())
}

func TestParseDay_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2026-2-8",
		"08-02-2026",
		"2026-02-30",
		"2026-13-01",
		"2026-02-08T00:00:00Z",
		"not-a-date",
	}
	for _, input := range cases {
		_, err := ParseDay(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParse_HalfOpen(t *testing.T) {
	r, err := Parse("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	// exclusive end is one day past the inclusive "to"
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), r.ToExclusive)
	assert.Equal(t, 31, r.Days())
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), r.To())
}

func TestParse_SingleDay(t *testing.T) {
	r, err := Parse("2026-03-15", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Days())
	assert.True(t, r.Contains(time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)))
}

func TestParse_MonthBoundary(t *testing.T) {
	r, err := Parse("2026-02-27", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Days())
}

func TestParse_LeapYear(t *testing.T) {
	r, err := Parse("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Days())

	_, err = ParseDay("2023-02-29")
	assert.Error(t, err)
}

func TestTruncate_UsesUTCCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// 00:30 local on Jan 2 is still Jan 1 in UTC
	local := time.Date(2026, 1, 2, 0, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Truncate(local))
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "2026-07-04", FormatDay(time.Date(2026, 7, 4, 15, 4, 5, 0, time.UTC)))
}

func TestAddDays(t *testing.T) {
	d := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), AddDays(d, 1))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), AddDays(d, -30))
}
