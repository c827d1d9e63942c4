package daterange

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func assertDay(t *testing.T, label string, got, want time.Time) {
	t.Helper()
	gy, gm, gd := got.Date()
	wy, wm, wd := want.Date()
	if gy != wy || gm != wm || gd != wd {
		t.Errorf("%s = %s, expected %s", label, got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestResolve_Keywords(t *testing.T) {
	tests := []struct {
		name      string
		period    string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:   "week from Monday",
			period: "week",
			now:    at(2026, time.August, 31, 10, 30), // Monday
			// Last full Sunday-Saturday week
			wantStart: date(2026, time.August, 23),
			wantEnd:   date(2026, time.August, 29),
		},
		{
			name:      "week from Sunday goes to previous week",
			period:    "week",
			now:       at(2026, time.August, 30, 9, 0), // Sunday
			wantStart: date(2026, time.August, 23),
			wantEnd:   date(2026, time.August, 29),
		},
		{
			name:      "week from Saturday skips the just-completed day",
			period:    "week",
			now:       at(2026, time.September, 5, 23, 0), // Saturday
			wantStart: date(2026, time.August, 23),
			wantEnd:   date(2026, time.August, 29),
		},
		{
			name:      "thisweek",
			period:    "thisweek",
			now:       at(2026, time.August, 31, 10, 30), // Monday
			wantStart: date(2026, time.August, 30),       // most recent Sunday
			wantEnd:   date(2026, time.August, 31),
		},
		{
			name:      "month is previous calendar month",
			period:    "month",
			now:       at(2026, time.August, 31, 12, 0),
			wantStart: date(2026, time.July, 1),
			wantEnd:   date(2026, time.July, 31),
		},
		{
			name:      "month handles leap February",
			period:    "month",
			now:       at(2024, time.March, 10, 8, 0),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "month rolls back across year boundary",
			period:    "month",
			now:       at(2026, time.January, 15, 8, 0),
			wantStart: date(2025, time.December, 1),
			wantEnd:   date(2025, time.December, 31),
		},
		{
			name:      "thismonth",
			period:    "thismonth",
			now:       at(2026, time.August, 31, 12, 0),
			wantStart: date(2026, time.August, 1),
			wantEnd:   date(2026, time.August, 31),
		},
		{
			name:      "quarter in Q1 rolls back to Q4 of previous year",
			period:    "quarter",
			now:       at(2026, time.January, 15, 12, 0),
			wantStart: date(2025, time.October, 1),
			wantEnd:   date(2025, time.December, 31),
		},
		{
			name:      "quarter in Q2 returns Q1",
			period:    "quarter",
			now:       at(2026, time.April, 15, 12, 0),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.March, 31),
		},
		{
			name:      "quarter in Q3 returns Q2",
			period:    "quarter",
			now:       at(2026, time.August, 31, 12, 0),
			wantStart: date(2026, time.April, 1),
			wantEnd:   date(2026, time.June, 30),
		},
		{
			name:      "year is previous calendar year",
			period:    "year",
			now:       at(2026, time.August, 31, 12, 0),
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.December, 31),
		},
		{
			name:      "thisyear",
			period:    "thisyear",
			now:       at(2026, time.August, 31, 12, 0),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.August, 31),
		},
		{
			name:      "keywords are case-insensitive",
			period:    "QuArTeR",
			now:       at(2026, time.January, 15, 12, 0),
			wantStart: date(2025, time.October, 1),
			wantEnd:   date(2025, time.December, 31),
		},
		{
			name:      "unknown keyword defaults to week",
			period:    "fortnight",
			now:       at(2026, time.August, 31, 10, 30),
			wantStart: date(2026, time.August, 23),
			wantEnd:   date(2026, time.August, 29),
		},
		{
			name:      "empty keyword defaults to week",
			period:    "",
			now:       at(2026, time.August, 31, 10, 30),
			wantStart: date(2026, time.August, 23),
			wantEnd:   date(2026, time.August, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := Resolve(tt.period, tt.now)
			assertDay(t, "Start", rng.Start, tt.wantStart)
			assertDay(t, "End", rng.End, tt.wantEnd)
			assertBoundaries(t, rng)
		})
	}
}

// assertBoundaries checks the day-granularity clamping: start of day on the
// left, 23:59:59.999 on the right.
func assertBoundaries(t *testing.T, rng Range) {
	t.Helper()
	if h, m, s := rng.Start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Start clock = %02d:%02d:%02d, expected 00:00:00", h, m, s)
	}
	if rng.Start.Nanosecond() != 0 {
		t.Errorf("Start nanoseconds = %d, expected 0", rng.Start.Nanosecond())
	}
	if h, m, s := rng.End.Clock(); h != 23 || m != 59 || s != 59 {
		t.Errorf("End clock = %02d:%02d:%02d, expected 23:59:59", h, m, s)
	}
	if rng.End.Nanosecond() != endOfDayNanos {
		t.Errorf("End nanoseconds = %d, expected %d", rng.End.Nanosecond(), endOfDayNanos)
	}
}

func TestResolveExplicit(t *testing.T) {
	rng, err := ResolveExplicit("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("ResolveExplicit returned error: %v", err)
	}
	assertDay(t, "Start", rng.Start, date(2026, time.January, 1))
	assertDay(t, "End", rng.End, date(2026, time.January, 31))
	assertBoundaries(t, rng)

	// Single-day range is valid: start 00:00 is before end 23:59.
	if _, err := ResolveExplicit("2026-05-05", "2026-05-05"); err != nil {
		t.Errorf("single-day range returned error: %v", err)
	}
}

func TestResolveExplicit_InvertedRange(t *testing.T) {
	_, err := ResolveExplicit("2026-02-01", "2026-01-01")
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	var inverted *InvertedRangeError
	if !errors.As(err, &inverted) {
		t.Fatalf("expected *InvertedRangeError, got %T: %v", err, err)
	}
}

func TestResolveExplicit_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string // offending input
	}{
		{name: "invalid month", from: "2026-13-01", to: "2026-12-31", want: "2026-13-01"},
		{name: "invalid day", from: "2026-02-01", to: "2026-02-30", want: "2026-02-30"},
		{name: "not a date", from: "yesterday", to: "2026-01-01", want: "yesterday"},
		{name: "empty from", from: "", to: "2026-01-01", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveExplicit(tt.from, tt.to)
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *InvalidDateError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidDateError, got %T: %v", err, err)
			}
			if invalid.Input != tt.want {
				t.Errorf("Input = %q, expected %q", invalid.Input, tt.want)
			}
		})
	}
}

func TestNew_RejectsInvertedBounds(t *testing.T) {
	start := date(2026, time.February, 1)
	end := date(2026, time.January, 1)

	_, err := New(start, end)
	var inverted *InvertedRangeError
	if !errors.As(err, &inverted) {
		t.Fatalf("expected *InvertedRangeError, got %v", err)
	}
	// The bounds must be reported, not swapped.
	if !inverted.Start.Equal(start) || !inverted.End.Equal(end) {
		t.Errorf("error bounds swapped: start %v end %v", inverted.Start, inverted.End)
	}
}

func TestRange_Contains(t *testing.T) {
	rng := Resolve("month", at(2026, time.August, 15, 12, 0))

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "inside", t: at(2026, time.July, 15, 12, 0), want: true},
		{name: "first instant", t: rng.Start, want: true},
		{name: "last instant", t: rng.End, want: true},
		{name: "before", t: at(2026, time.June, 30, 23, 59), want: false},
		{name: "after", t: date(2026, time.August, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rng.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, expected %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	rng := Resolve("week", at(2026, time.August, 31, 10, 0))
	if got := rng.Days(); got != 7 {
		t.Errorf("Days() = %d, expected 7", got)
	}
}
