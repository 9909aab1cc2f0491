package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

func day(value string) time.Time {
	d, err := time.ParseInLocation(domain.DateFormat, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(projectID int64, projectName string, spentDate string, hours float64, billable bool) domain.TimeEntry {
	return domain.TimeEntry{
		Project:   domain.EntryProject{ID: projectID, Name: projectName},
		SpentDate: day(spentDate),
		Hours:     hours,
		Billable:  billable,
	}
}

func assignment(harvestID int64, projectName string, totalHours float64) domain.AssignmentEntry {
	return domain.AssignmentEntry{
		Project:    &domain.AssignmentProject{ID: harvestID + 1000, HarvestID: harvestID, Name: projectName},
		TotalHours: totalHours,
	}
}

func TestJoinProjectHours(t *testing.T) {
	t.Run("spent and planned merge under one key", func(t *testing.T) {
		entries := []domain.TimeEntry{entry(7, "Atlas", "2021-04-05", 5, true)}
		assignments := []domain.AssignmentEntry{assignment(7, "Atlas", 10)}

		summaries, diag := JoinProjectHours(entries, assignments)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Atlas", summaries[0].Name)
		assert.Equal(t, 5.0, summaries[0].HoursSpent)
		assert.Equal(t, 10.0, summaries[0].HoursPlanned)
		assert.True(t, diag.Empty())
	})

	t.Run("planned-only project still appears once", func(t *testing.T) {
		assignments := []domain.AssignmentEntry{assignment(7, "Atlas", 10)}

		summaries, _ := JoinProjectHours(nil, assignments)
		require.Len(t, summaries, 1)
		assert.Equal(t, 0.0, summaries[0].HoursSpent)
		assert.Equal(t, 10.0, summaries[0].HoursPlanned)
	})

	t.Run("spent-only project still appears once", func(t *testing.T) {
		entries := []domain.TimeEntry{entry(7, "Atlas", "2021-04-05", 5, true)}

		summaries, _ := JoinProjectHours(entries, nil)
		require.Len(t, summaries, 1)
		assert.Equal(t, 5.0, summaries[0].HoursSpent)
		assert.Equal(t, 0.0, summaries[0].HoursPlanned)
	})

	t.Run("hours accumulate per key", func(t *testing.T) {
		entries := []domain.TimeEntry{
			entry(7, "Atlas", "2021-04-05", 2, true),
			entry(7, "Atlas", "2021-04-06", 3, true),
			entry(9, "Borealis", "2021-04-05", 1, false),
		}
		assignments := []domain.AssignmentEntry{
			assignment(7, "Atlas", 4),
			assignment(7, "Atlas", 6),
		}

		summaries, _ := JoinProjectHours(entries, assignments)
		require.Len(t, summaries, 2)
		// Insertion order: entries first.
		assert.Equal(t, "Atlas", summaries[0].Name)
		assert.Equal(t, 5.0, summaries[0].HoursSpent)
		assert.Equal(t, 10.0, summaries[0].HoursPlanned)
		assert.Equal(t, "Borealis", summaries[1].Name)
		assert.Equal(t, 1.0, summaries[1].HoursSpent)
	})

	t.Run("name fallback when no ids are present", func(t *testing.T) {
		entries := []domain.TimeEntry{entry(0, "Atlas", "2021-04-05", 5, true)}
		assignments := []domain.AssignmentEntry{{
			Project:    &domain.AssignmentProject{Name: "Atlas"},
			TotalHours: 10,
		}}

		summaries, diag := JoinProjectHours(entries, assignments)
		require.Len(t, summaries, 1)
		assert.Equal(t, 5.0, summaries[0].HoursSpent)
		assert.Equal(t, 10.0, summaries[0].HoursPlanned)
		assert.True(t, diag.Empty())
	})

	t.Run("unlinked planning ids stay in their own key space", func(t *testing.T) {
		entries := []domain.TimeEntry{entry(5, "Atlas", "2021-04-05", 5, true)}
		assignments := []domain.AssignmentEntry{{
			// Planning-side id happens to collide with a tracking-side id.
			Project:    &domain.AssignmentProject{ID: 5, Name: "Borealis"},
			TotalHours: 10,
		}}

		summaries, _ := JoinProjectHours(entries, assignments)
		require.Len(t, summaries, 2)
	})

	t.Run("records without project identity are skipped and counted", func(t *testing.T) {
		entries := []domain.TimeEntry{
			entry(7, "Atlas", "2021-04-05", 5, true),
			entry(0, "", "2021-04-05", 3, true),
		}
		assignments := []domain.AssignmentEntry{
			{TotalHours: 10}, // no project at all
			{Project: &domain.AssignmentProject{}, TotalHours: 4},
		}

		summaries, diag := JoinProjectHours(entries, assignments)
		require.Len(t, summaries, 1)
		assert.Equal(t, 5.0, summaries[0].HoursSpent)
		assert.Equal(t, 1, diag.SkippedEntries)
		assert.Equal(t, 2, diag.SkippedAssignments)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		summaries, diag := JoinProjectHours(nil, nil)
		assert.Empty(t, summaries)
		assert.True(t, diag.Empty())
	})
}

func TestBucketByDay(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(7, "Atlas", "2021-04-06", 2, true),
		entry(7, "Atlas", "2021-04-05", 3, true),
		entry(9, "Borealis", "2021-04-06", 1, false),
	}

	t.Run("sparse series in insertion order", func(t *testing.T) {
		buckets := BucketByDay(entries, nil)
		require.Len(t, buckets, 2)
		assert.Equal(t, day("2021-04-06"), buckets[0].Date)
		assert.Equal(t, 3.0, buckets[0].Hours)
		assert.Equal(t, day("2021-04-05"), buckets[1].Date)
		assert.Equal(t, 3.0, buckets[1].Hours)
	})

	t.Run("dense series is pre-seeded and sorted", func(t *testing.T) {
		rng, err := domain.ParseDateRange("2021-04-05", "2021-04-08")
		require.NoError(t, err)

		buckets := BucketByDay(entries, &rng)
		require.Len(t, buckets, 4)

		assert.Equal(t, []domain.DayBucket{
			{Date: day("2021-04-05"), Hours: 3},
			{Date: day("2021-04-06"), Hours: 3},
			{Date: day("2021-04-07"), Hours: 0},
			{Date: day("2021-04-08"), Hours: 0},
		}, buckets)
	})

	t.Run("entries outside the seeded range still bucket", func(t *testing.T) {
		rng, err := domain.ParseDateRange("2021-04-07", "2021-04-08")
		require.NoError(t, err)

		buckets := BucketByDay(entries, &rng)
		require.Len(t, buckets, 4)
		// Sorted ascending, stray days included.
		assert.Equal(t, day("2021-04-05"), buckets[0].Date)
		assert.Equal(t, day("2021-04-08"), buckets[3].Date)
	})

	t.Run("empty input without range is empty", func(t *testing.T) {
		assert.Empty(t, BucketByDay(nil, nil))
	})
}

func TestOvertimePerDay(t *testing.T) {
	buckets := []domain.DayBucket{
		{Date: day("2021-04-05"), Hours: 10},
		{Date: day("2021-04-06"), Hours: 8},
		{Date: day("2021-04-07"), Hours: 3.5},
		{Date: day("2021-04-08"), Hours: 0},
	}

	overtime := OvertimePerDay(buckets, 8)
	require.Len(t, overtime, 4)
	assert.Equal(t, 2.0, overtime[0].Hours)
	assert.Equal(t, 0.0, overtime[1].Hours)
	assert.Equal(t, 0.0, overtime[2].Hours)
	assert.Equal(t, 0.0, overtime[3].Hours)

	t.Run("never negative", func(t *testing.T) {
		for _, b := range OvertimePerDay(buckets, 24) {
			assert.GreaterOrEqual(t, b.Hours, 0.0)
		}
	})
}

func TestBillableSplit(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(7, "Atlas", "2021-04-05", 5, true),
		entry(7, "Atlas", "2021-04-06", 2.5, true),
		entry(9, "Borealis", "2021-04-05", 3, false),
	}

	split := BillableSplit(entries)
	assert.Equal(t, 7.5, split.Billable)
	assert.Equal(t, 3.0, split.NonBillable)

	t.Run("empty input is a zero split", func(t *testing.T) {
		assert.Equal(t, domain.BillableSplit{}, BillableSplit(nil))
	})
}

func TestBillablePercentage(t *testing.T) {
	t.Run("regular split", func(t *testing.T) {
		pct := BillablePercentage(domain.BillableSplit{Billable: 7.5, NonBillable: 2.5})
		assert.InDelta(t, 75.0, pct, 1e-9)
	})

	t.Run("all billable", func(t *testing.T) {
		pct := BillablePercentage(domain.BillableSplit{Billable: 4})
		assert.InDelta(t, 100.0, pct, 1e-9)
	})

	t.Run("no hours at all is no data, not zero", func(t *testing.T) {
		pct := BillablePercentage(domain.BillableSplit{})
		assert.True(t, math.IsNaN(pct))
	})
}

func TestAveragePerDay(t *testing.T) {
	assert.InDelta(t, 8.0, AveragePerDay(40, 5), 1e-9)
	assert.True(t, math.IsNaN(AveragePerDay(0, 0)))
}
