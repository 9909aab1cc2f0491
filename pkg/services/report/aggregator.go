// Package report joins raw time-entry and assignment records into the
// summaries the dashboard renders: per-project, per-day and billable
// figures. The aggregation functions are pure and total over
// well-formed slices; empty input yields empty or zero-valued output.
package report

import (
	"math"
	"sort"
	"strconv"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// entryKey resolves the join key for a time entry: the upstream project
// id, falling back to the project name. Empty means unresolvable.
func entryKey(e domain.TimeEntry) string {
	if e.Project.ID != 0 {
		return strconv.FormatInt(e.Project.ID, 10)
	}
	return e.Project.Name
}

// assignmentKey resolves the join key for an assignment: the linked
// time-tracking project id when the project is linked, else the
// planning-side id (kept in its own key space), else the name.
func assignmentKey(a domain.AssignmentEntry) string {
	if a.Project == nil {
		return ""
	}
	if a.Project.HarvestID != 0 {
		return strconv.FormatInt(a.Project.HarvestID, 10)
	}
	if a.Project.ID != 0 {
		return "forecast:" + strconv.FormatInt(a.Project.ID, 10)
	}
	return a.Project.Name
}

// JoinProjectHours merges spent hours from entries with planned hours
// from assignments under the best available project key. Every project
// touched by either side is seeded before accumulation, so a project
// with only planned hours still appears exactly once. Records without a
// resolvable key are skipped and counted in the diagnostics.
//
// Output order is insertion order of first encounter, entries first;
// callers needing a different order sort explicitly.
func JoinProjectHours(
	entries []domain.TimeEntry,
	assignments []domain.AssignmentEntry,
) ([]domain.ProjectHoursSummary, domain.JoinDiagnostics) {
	var diag domain.JoinDiagnostics

	summaries := make(map[string]*domain.ProjectHoursSummary)
	var order []string

	seed := func(key, name, code string) {
		s, ok := summaries[key]
		if !ok {
			summaries[key] = &domain.ProjectHoursSummary{Name: name, Code: code}
			order = append(order, key)
			return
		}
		if s.Name == "" {
			s.Name = name
		}
		if s.Code == "" {
			s.Code = code
		}
	}

	for _, e := range entries {
		key := entryKey(e)
		if key == "" {
			diag.SkippedEntries++
			continue
		}
		seed(key, e.Project.Name, e.Project.Code)
	}
	for _, a := range assignments {
		key := assignmentKey(a)
		if key == "" {
			diag.SkippedAssignments++
			continue
		}
		seed(key, a.Project.Name, a.Project.Code)
	}

	for _, e := range entries {
		if key := entryKey(e); key != "" {
			summaries[key].HoursSpent += e.Hours
		}
	}
	for _, a := range assignments {
		if key := assignmentKey(a); key != "" {
			summaries[key].HoursPlanned += a.TotalHours
		}
	}

	result := make([]domain.ProjectHoursSummary, 0, len(order))
	for _, key := range order {
		result = append(result, *summaries[key])
	}
	return result, diag
}

// BucketByDay accumulates hours per spent date. When rng is supplied,
// one zero-hour bucket per calendar day in the range is pre-seeded and
// the result is sorted ascending by date, giving the dense series a
// chart needs even on days with no activity. Without rng the result is
// sparse, in insertion order.
func BucketByDay(entries []domain.TimeEntry, rng *domain.DateRange) []domain.DayBucket {
	index := make(map[string]int)
	var buckets []domain.DayBucket

	seed := func(date string, day domain.DayBucket) int {
		idx, ok := index[date]
		if !ok {
			idx = len(buckets)
			index[date] = idx
			buckets = append(buckets, day)
		}
		return idx
	}

	if rng != nil {
		for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
			seed(d.Format(domain.DateFormat), domain.DayBucket{Date: d})
		}
	}

	for _, e := range entries {
		date := domain.Midnight(e.SpentDate)
		idx := seed(date.Format(domain.DateFormat), domain.DayBucket{Date: date})
		buckets[idx].Hours += e.Hours
	}

	if rng != nil {
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Date.Before(buckets[j].Date)
		})
	}
	return buckets
}

// OvertimePerDay maps each bucket to the hours above the daily
// capacity. Undercapacity days report 0, never a negative delta.
func OvertimePerDay(buckets []domain.DayBucket, dailyCapacityHours float64) []domain.DayBucket {
	overtime := make([]domain.DayBucket, 0, len(buckets))
	for _, b := range buckets {
		overtime = append(overtime, domain.DayBucket{
			Date:  b.Date,
			Hours: math.Max(b.Hours-dailyCapacityHours, 0),
		})
	}
	return overtime
}

// BillableSplit partitions hours strictly on the billable flag.
func BillableSplit(entries []domain.TimeEntry) domain.BillableSplit {
	var split domain.BillableSplit
	for _, e := range entries {
		if e.Billable {
			split.Billable += e.Hours
		} else {
			split.NonBillable += e.Hours
		}
	}
	return split
}

// BillablePercentage returns the billable share of total hours in
// percent. With no hours on either side there is no data to express,
// and the result is NaN; callers must not coerce that to 0.
func BillablePercentage(split domain.BillableSplit) float64 {
	total := split.Billable + split.NonBillable
	if total == 0 {
		return math.NaN()
	}
	return 100 * split.Billable / total
}

// AveragePerDay spreads total hours over a business-day count computed
// by the caller. A zero count yields NaN, mirroring the percentage
// sentinel.
func AveragePerDay(totalHours float64, businessDayCount int) float64 {
	if businessDayCount == 0 {
		return math.NaN()
	}
	return totalHours / float64(businessDayCount)
}
