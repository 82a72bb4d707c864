package period

import (
	"errors"
	"fmt"
	"time"
)

// Granularity says whether a report period covers a week or a month
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Date layouts accepted for report anchors
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ErrInvalidAnchor is returned when an anchor string cannot be parsed
var ErrInvalidAnchor = errors.New("invalid anchor")

// Period is an inclusive calendar date range covered by one report
type Period struct {
	Start       time.Time   `json:"start_date"`
	End         time.Time   `json:"end_date"`
	Granularity Granularity `json:"granularity"`
}

// truncate drops the time-of-day component, keeping the calendar date in UTC
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf returns the Monday of the ISO week containing t
func mondayOf(t time.Time) time.Time {
	t = truncate(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started six days earlier
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// CurrentWeek returns the Monday-to-Sunday week containing now
func CurrentWeek(now time.Time) Period {
	start := mondayOf(now)
	return Period{
		Start:       start,
		End:         start.AddDate(0, 0, 6),
		Granularity: GranularityWeek,
	}
}

// WeekOf resolves a weekly report period. An empty anchor defaults to the
// current ISO week; otherwise the anchor must be a YYYY-MM-DD date and the
// period always spans anchor..anchor+6 days.
func WeekOf(anchor string, now time.Time) (Period, error) {
	if anchor == "" {
		return CurrentWeek(now), nil
	}

	start, err := time.ParseInLocation(DateLayout, anchor, time.UTC)
	if err != nil {
		return Period{}, fmt.Errorf("%w: week start %q is not a YYYY-MM-DD date", ErrInvalidAnchor, anchor)
	}

	return Period{
		Start:       start,
		End:         start.AddDate(0, 0, 6),
		Granularity: GranularityWeek,
	}, nil
}

// CurrentMonth returns the calendar month containing now
func CurrentMonth(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start:       start,
		End:         start.AddDate(0, 1, -1),
		Granularity: GranularityMonth,
	}
}

// MonthOf resolves a monthly report period. An empty anchor defaults to the
// current month; otherwise the anchor must be in YYYY-MM form.
func MonthOf(anchor string, now time.Time) (Period, error) {
	if anchor == "" {
		return CurrentMonth(now), nil
	}

	start, err := time.ParseInLocation(MonthLayout, anchor, time.UTC)
	if err != nil {
		return Period{}, fmt.Errorf("%w: month %q is not in YYYY-MM form", ErrInvalidAnchor, anchor)
	}

	return Period{
		Start:       start,
		End:         start.AddDate(0, 1, -1),
		Granularity: GranularityMonth,
	}, nil
}

// Days returns the number of calendar days in the period, inclusive
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Dates returns every calendar day in the period in ascending order
func (p Period) Dates() []time.Time {
	dates := make([]time.Time, 0, p.Days())
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains reports whether the given date falls inside the period
func (p Period) Contains(t time.Time) bool {
	t = truncate(t)
	return !t.Before(p.Start) && !t.After(p.End)
}
