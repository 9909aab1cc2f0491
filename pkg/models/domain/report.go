package domain

import "time"

// ProjectHoursSummary merges spent hours from time entries with planned
// hours from assignments under a single project key.
type ProjectHoursSummary struct {
	Name         string
	Code         string
	HoursSpent   float64
	HoursPlanned float64
}

// DayBucket accumulates hours for a single calendar date.
type DayBucket struct {
	Date  time.Time
	Hours float64
}

// BillableSplit partitions total hours on the billable flag.
type BillableSplit struct {
	Billable    float64
	NonBillable float64
}

// JoinDiagnostics counts records excluded from a join because no
// project identity could be resolved. Not an error, but observable.
type JoinDiagnostics struct {
	SkippedEntries     int
	SkippedAssignments int
}

func (d JoinDiagnostics) Empty() bool {
	return d.SkippedEntries == 0 && d.SkippedAssignments == 0
}

// Report is the full set of summaries a dashboard renders for one
// requested range.
type Report struct {
	Period       DateRange
	Interval     Interval
	Projects     []ProjectHoursSummary
	PerDay       []DayBucket
	Overtime     []DayBucket
	Split        BillableSplit
	// BillablePercent is NaN when no hours were logged at all; callers
	// must treat that as "no data", never as 0%.
	BillablePercent float64
	TotalSpent      float64
	TotalPlanned    float64
	BusinessDays    int
	AveragePerDay   float64
}
