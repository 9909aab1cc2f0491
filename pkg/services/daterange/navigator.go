// Package daterange classifies date ranges into calendar granularities
// and navigates to the previous/next period of the same shape.
package daterange

import (
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// Classification bands over the whole-day span of a range, checked in
// order week -> month -> year -> day. The month upper bound is fixed at
// 60 days; this is the single source of truth for the band.
const (
	weekSpanMin  = 6
	monthSpanMin = 27
	yearSpanMin  = 60
)

// Classify derives the granularity of a range from its span. Total over
// well-formed ranges: every input classifies into exactly one Interval.
func Classify(r domain.DateRange) domain.Interval {
	d := r.Days()
	switch {
	case d >= weekSpanMin && d < monthSpanMin:
		return domain.IntervalWeek
	case d >= monthSpanMin && d < yearSpanMin:
		return domain.IntervalMonth
	case d >= yearSpanMin:
		return domain.IntervalYear
	default:
		return domain.IntervalDay
	}
}

// Navigator shifts ranges by whole calendar units, aligning results to
// period boundaries. The week-start day is configurable and applies to
// week shifting and boundary expansion alike.
type Navigator struct {
	weekStart time.Weekday
}

func NewNavigator(weekStart time.Weekday) *Navigator {
	return &Navigator{weekStart: weekStart}
}

// Shift computes the previous or next period of the given granularity.
//
// Day shifts anchor on the range start, move it one day, and collapse
// to a single-day range. Week/month/year shifts anchor on the period
// containing the end date (forward) or start date (backward), move one
// unit, and expand to that unit's full boundaries, so irregular input
// ranges still round-trip through calendar-aligned periods.
//
// The input range is never mutated; start <= end is a precondition.
func (n *Navigator) Shift(r domain.DateRange, interval domain.Interval, forward bool) domain.DateRange {
	step := 1
	anchor := r.End
	if !forward {
		step = -1
		anchor = r.Start
	}

	switch interval {
	case domain.IntervalWeek:
		start := n.startOfWeek(anchor).AddDate(0, 0, 7*step)
		return domain.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case domain.IntervalMonth:
		start := startOfMonth(anchor).AddDate(0, step, 0)
		return domain.DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	case domain.IntervalYear:
		start := startOfYear(anchor).AddDate(step, 0, 0)
		return domain.DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		return domain.SingleDay(r.Start.AddDate(0, 0, step))
	}
}

// Next is shorthand for a forward shift of the range's own granularity.
func (n *Navigator) Next(r domain.DateRange) domain.DateRange {
	return n.Shift(r, Classify(r), true)
}

// Prev is shorthand for a backward shift of the range's own granularity.
func (n *Navigator) Prev(r domain.DateRange) domain.DateRange {
	return n.Shift(r, Classify(r), false)
}

// Expand returns the full period of the given granularity containing
// the day.
func (n *Navigator) Expand(day time.Time, interval domain.Interval) domain.DateRange {
	day = domain.Midnight(day)
	switch interval {
	case domain.IntervalWeek:
		start := n.startOfWeek(day)
		return domain.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case domain.IntervalMonth:
		start := startOfMonth(day)
		return domain.DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	case domain.IntervalYear:
		start := startOfYear(day)
		return domain.DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		return domain.SingleDay(day)
	}
}

func (n *Navigator) startOfWeek(t time.Time) time.Time {
	t = domain.Midnight(t)
	back := (int(t.Weekday()) - int(n.weekStart) + 7) % 7
	return t.AddDate(0, 0, -back)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// BusinessDays counts weekdays (Mon-Fri) in the range, inclusive.
func BusinessDays(r domain.DateRange) int {
	count := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
