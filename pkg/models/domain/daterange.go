package domain

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date text format used at every external boundary.
const DateFormat = "2006-01-02"

// Interval is a calendar granularity derived from a DateRange's span.
// It is never stored, always recomputed on demand.
type Interval int

const (
	IntervalDay Interval = iota
	IntervalWeek
	IntervalMonth
	IntervalYear
)

func (i Interval) String() string {
	switch i {
	case IntervalDay:
		return "day"
	case IntervalWeek:
		return "week"
	case IntervalMonth:
		return "month"
	case IntervalYear:
		return "year"
	}
	return "unknown"
}

// ParseInterval maps the textual granularity back to an Interval.
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "day":
		return IntervalDay, nil
	case "week":
		return IntervalWeek, nil
	case "month":
		return IntervalMonth, nil
	case "year":
		return IntervalYear, nil
	}
	return IntervalDay, fmt.Errorf("unknown interval %q", s)
}

// DateRange is an ordered pair of calendar dates, start <= end, both
// normalized to midnight UTC. A range may collapse to a single day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and normalizes a date pair. Callers must go
// through this constructor at the boundary; the rest of the engine
// assumes start <= end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = Midnight(start)
	end = Midnight(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("invalid date range: start (%s) is after end (%s)",
			start.Format(DateFormat), end.Format(DateFormat))
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange builds a range from two yyyy-MM-dd strings.
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := time.ParseInLocation(DateFormat, from, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date %q: %w", from, err)
	}
	end, err := time.ParseInLocation(DateFormat, to, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date %q: %w", to, err)
	}
	return NewDateRange(start, end)
}

// SingleDay collapses a date into a one-day range.
func SingleDay(day time.Time) DateRange {
	day = Midnight(day)
	return DateRange{Start: day, End: day}
}

// Midnight strips the time-of-day component and pins the date to UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the whole-day span between start and end (end - start),
// zero for a single-day range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// Contains reports whether the day falls inside the range, inclusive.
func (r DateRange) Contains(day time.Time) bool {
	day = Midnight(day)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Clamp narrows the range to the overlap with bounds. An empty overlap
// reports false.
func (r DateRange) Clamp(bounds DateRange) (DateRange, bool) {
	start, end := r.Start, r.End
	if start.Before(bounds.Start) {
		start = bounds.Start
	}
	if end.After(bounds.End) {
		end = bounds.End
	}
	if end.Before(start) {
		return DateRange{}, false
	}
	return DateRange{Start: start, End: end}, true
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}
