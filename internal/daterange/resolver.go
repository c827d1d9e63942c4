package daterange

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Period is a symbolic shorthand for a date range relative to the current
// instant.
type Period string

const (
	PeriodWeek      Period = "week"
	PeriodThisWeek  Period = "thisweek"
	PeriodMonth     Period = "month"
	PeriodThisMonth Period = "thismonth"
	PeriodQuarter   Period = "quarter"
	PeriodYear      Period = "year"
	PeriodThisYear  Period = "thisyear"
)

// Range is an inclusive [Start, End] instant pair at day granularity:
// Start is 00:00:00.000 of the first day, End is 23:59:59.999 of the last.
type Range struct {
	Start time.Time
	End   time.Time
}

// New constructs a Range, rejecting inverted bounds.
func New(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, &InvertedRangeError{Start: start, End: end}
	}
	return Range{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the range (inclusive).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days the range spans.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r Range) String() string {
	return r.Start.Format(dateLayout) + " to " + r.End.Format(dateLayout)
}

// Resolve maps a period keyword to a concrete range relative to now.
// Keywords are case-insensitive; an unrecognized or empty keyword falls back
// to "week". All boundaries are computed in now's location.
func Resolve(period string, now time.Time) Range {
	switch Period(strings.ToLower(strings.TrimSpace(period))) {
	case PeriodThisWeek:
		return thisWeek(now)
	case PeriodMonth:
		return previousMonth(now)
	case PeriodThisMonth:
		return thisMonth(now)
	case PeriodQuarter:
		return previousQuarter(now)
	case PeriodYear:
		return previousYear(now)
	case PeriodThisYear:
		return thisYear(now)
	default:
		return lastFullWeek(now)
	}
}

// ResolveExplicit parses from/to calendar dates in the local zone and returns
// the inclusive range they bound. Parse failures yield *InvalidDateError,
// inverted bounds *InvertedRangeError.
func ResolveExplicit(from, to string) (Range, error) {
	start, err := time.ParseInLocation(dateLayout, from, time.Local)
	if err != nil {
		return Range{}, &InvalidDateError{Input: from}
	}
	end, err := time.ParseInLocation(dateLayout, to, time.Local)
	if err != nil {
		return Range{}, &InvalidDateError{Input: to}
	}
	return New(startOfDay(start), endOfDay(end))
}

// lastFullWeek returns the last complete Sunday-Saturday week ending on or
// before now. When now is itself a Saturday the week ending seven days back
// is used, so the current (just completed) day never counts.
func lastFullWeek(now time.Time) Range {
	daysBack := int(now.Weekday()) + 1
	if now.Weekday() == time.Saturday {
		daysBack = 7
	}
	end := endOfDay(now.AddDate(0, 0, -daysBack))
	start := startOfDay(end.AddDate(0, 0, -6))
	return Range{Start: start, End: end}
}

func thisWeek(now time.Time) Range {
	start := startOfDay(now.AddDate(0, 0, -int(now.Weekday())))
	return Range{Start: start, End: endOfDay(now)}
}

func previousMonth(now time.Time) Range {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfCurrent.AddDate(0, -1, 0)
	return Range{Start: start, End: endOfMonth(start)}
}

func thisMonth(now time.Time) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: endOfDay(now)}
}

// previousQuarter returns the previous 3-calendar-month quarter. A now in Q1
// rolls back to Q4 of the prior year.
func previousQuarter(now time.Time) Range {
	year := now.Year()
	quarter := (int(now.Month()) - 1) / 3
	if quarter == 0 {
		year--
		quarter = 4
	}
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: endOfMonth(start.AddDate(0, 2, 0))}
}

func previousYear(now time.Time) Range {
	year := now.Year() - 1
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   time.Date(year, time.December, 31, 23, 59, 59, endOfDayNanos, now.Location()),
	}
}

func thisYear(now time.Time) Range {
	return Range{
		Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   endOfDay(now),
	}
}

const endOfDayNanos = int(999 * time.Millisecond)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, endOfDayNanos, t.Location())
}

// endOfMonth clamps to the last day of t's month via day zero of the
// following month, so leap years need no special casing.
func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 23, 59, 59, endOfDayNanos, t.Location())
}
