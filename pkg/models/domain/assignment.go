package domain

import "time"

// AssignmentProject carries the planning-side project identity plus the
// cross-system id linking it to the time-tracking upstream, when the
// project is linked at all.
type AssignmentProject struct {
	ID        int64
	HarvestID int64
	Name      string
	Code      string
}

type AssignmentPerson struct {
	ID   int64
	Name string
}

// AssignmentEntry is a planned allocation of a person to a project over
// a date range, as returned by the planning upstream. Allocation is in
// seconds per day; the Hours/Days/Total fields are derived via
// WithComputed and are zero on a freshly fetched record.
type AssignmentEntry struct {
	ID                int64
	Project           *AssignmentProject
	Person            *AssignmentPerson
	StartDate         time.Time
	EndDate           time.Time
	AllocationSeconds int64

	HoursPerDay float64
	TotalHours  float64
	Days        int
}

// WithComputed fills the derived fields, clamping the assignment window
// to the requested bounds first. Days is the inclusive day count of the
// clamped window; an assignment entirely outside the bounds computes to
// zero days and zero hours.
func (a AssignmentEntry) WithComputed(bounds DateRange) AssignmentEntry {
	span := DateRange{Start: Midnight(a.StartDate), End: Midnight(a.EndDate)}
	clamped, ok := span.Clamp(bounds)
	if !ok {
		a.HoursPerDay = 0
		a.TotalHours = 0
		a.Days = 0
		return a
	}
	a.Days = clamped.Days() + 1
	a.HoursPerDay = float64(a.AllocationSeconds) / 3600
	a.TotalHours = float64(a.Days) * a.HoursPerDay
	return a
}
