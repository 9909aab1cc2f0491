package adapters

import (
	"math"

	"github.com/de-tools/time-atlas/pkg/models/api"
	"github.com/de-tools/time-atlas/pkg/models/domain"
)

func MapDateRangeDomainToApi(r domain.DateRange) api.DateRange {
	return api.DateRange{
		Start: r.Start.Format(domain.DateFormat),
		End:   r.End.Format(domain.DateFormat),
	}
}

func MapProjectHoursDomainToApi(s domain.ProjectHoursSummary) api.ProjectHoursSummary {
	return api.ProjectHoursSummary{
		Name:         s.Name,
		Code:         s.Code,
		HoursSpent:   s.HoursSpent,
		HoursPlanned: s.HoursPlanned,
	}
}

func MapDayBucketDomainToApi(b domain.DayBucket) api.DayBucket {
	return api.DayBucket{
		Date:  b.Date.Format(domain.DateFormat),
		Hours: b.Hours,
	}
}

func MapDayBucketsDomainToApi(buckets []domain.DayBucket) []api.DayBucket {
	result := make([]api.DayBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, MapDayBucketDomainToApi(b))
	}
	return result
}

func MapReportDomainToApi(r *domain.Report) api.Report {
	projects := make([]api.ProjectHoursSummary, 0, len(r.Projects))
	for _, s := range r.Projects {
		projects = append(projects, MapProjectHoursDomainToApi(s))
	}

	return api.Report{
		Period:   MapDateRangeDomainToApi(r.Period),
		Interval: r.Interval.String(),
		Projects: projects,
		PerDay:   MapDayBucketsDomainToApi(r.PerDay),
		Overtime: MapDayBucketsDomainToApi(r.Overtime),
		Split: api.BillableSplit{
			Billable:    r.Split.Billable,
			NonBillable: r.Split.NonBillable,
		},
		BillablePercent: mapNoDataValue(r.BillablePercent),
		TotalSpent:      r.TotalSpent,
		TotalPlanned:    r.TotalPlanned,
		BusinessDays:    r.BusinessDays,
		AveragePerDay:   mapNoDataValue(r.AveragePerDay),
	}
}

// mapNoDataValue turns the NaN "no data" sentinel into a JSON null
// instead of a misleading number.
func mapNoDataValue(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
