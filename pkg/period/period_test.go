package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOfEmptyAnchorDefaultsToCurrentWeek(t *testing.T) {
	// Wednesday
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

	p, err := WeekOf("", now)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.March, 10), p.Start)
	assert.Equal(t, date(2025, time.March, 16), p.End)
	assert.Equal(t, GranularityWeek, p.Granularity)
	assert.Equal(t, 7, p.Days())
}

func TestWeekOfSundayBelongsToStartedWeek(t *testing.T) {
	// Sunday stays in the week that began the previous Monday
	now := date(2025, time.March, 16)

	p, err := WeekOf("", now)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.March, 10), p.Start)
	assert.Equal(t, date(2025, time.March, 16), p.End)
}

func TestWeekOfAnchorSpansSevenDaysFromAnchor(t *testing.T) {
	now := date(2025, time.June, 1)

	// Anchor is a Wednesday; the period still runs anchor..anchor+6
	p, err := WeekOf("2025-03-05", now)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.March, 5), p.Start)
	assert.Equal(t, date(2025, time.March, 11), p.End)
	assert.Equal(t, 7, p.Days())
}

func TestWeekOfRejectsMalformedAnchor(t *testing.T) {
	for _, anchor := range []string{"03-05-2025", "2025-13-40", "not-a-date", "2025-03"} {
		_, err := WeekOf(anchor, date(2025, time.June, 1))
		assert.ErrorIs(t, err, ErrInvalidAnchor, "anchor %q", anchor)
	}
}

func TestMonthOfEmptyAnchorDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.February, 14, 9, 0, 0, 0, time.UTC)

	p, err := MonthOf("", now)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.February, 1), p.Start)
	assert.Equal(t, date(2025, time.February, 28), p.End)
	assert.Equal(t, GranularityMonth, p.Granularity)
	assert.Equal(t, 28, p.Days())
}

func TestMonthOfHandlesMonthLengths(t *testing.T) {
	tests := []struct {
		anchor string
		end    time.Time
		days   int
	}{
		{"2024-02", date(2024, time.February, 29), 29}, // leap year
		{"2025-01", date(2025, time.January, 31), 31},
		{"2025-04", date(2025, time.April, 30), 30},
		{"2025-12", date(2025, time.December, 31), 31},
	}

	for _, tt := range tests {
		p, err := MonthOf(tt.anchor, date(2025, time.June, 1))
		require.NoError(t, err, "anchor %q", tt.anchor)
		assert.Equal(t, tt.end, p.End, "anchor %q", tt.anchor)
		assert.Equal(t, tt.days, p.Days(), "anchor %q", tt.anchor)
	}
}

func TestMonthOfRejectsMalformedAnchor(t *testing.T) {
	for _, anchor := range []string{"2025-02-01", "02-2025", "2025/02", "junk"} {
		_, err := MonthOf(anchor, date(2025, time.June, 1))
		assert.ErrorIs(t, err, ErrInvalidAnchor, "anchor %q", anchor)
	}
}

func TestDatesCoverEveryDayInOrder(t *testing.T) {
	p, err := WeekOf("2025-03-10", date(2025, time.June, 1))
	require.NoError(t, err)

	dates := p.Dates()
	require.Len(t, dates, 7)
	assert.Equal(t, p.Start, dates[0])
	assert.Equal(t, p.End, dates[6])
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
	}
}

func TestContains(t *testing.T) {
	p, err := MonthOf("2025-02", date(2025, time.June, 1))
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2025, time.February, 1)))
	assert.True(t, p.Contains(time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(date(2025, time.January, 31)))
	assert.False(t, p.Contains(date(2025, time.March, 1)))
}
