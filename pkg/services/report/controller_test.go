package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/time-atlas/pkg/cache"
	"github.com/de-tools/time-atlas/pkg/cache/memory"
	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// MockTimeEntryProvider is a mock implementation of TimeEntryProvider for testing
type MockTimeEntryProvider struct {
	mock.Mock
}

func (m *MockTimeEntryProvider) FetchTimeEntries(
	ctx context.Context,
	userIDs []int64,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, userIDs, rng, projectID)
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

// MockAssignmentProvider is a mock implementation of AssignmentProvider for testing
type MockAssignmentProvider struct {
	mock.Mock
}

func (m *MockAssignmentProvider) FetchAssignments(
	ctx context.Context,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.AssignmentEntry, error) {
	args := m.Called(ctx, rng, projectID)
	return args.Get(0).([]domain.AssignmentEntry), args.Error(1)
}

type MockProjectProvider struct {
	mock.Mock
}

func (m *MockProjectProvider) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

type MockPersonProvider struct {
	mock.Mock
}

func (m *MockPersonProvider) FetchPersons(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Person), args.Error(1)
}

type fixture struct {
	entries     *MockTimeEntryProvider
	assignments *MockAssignmentProvider
	projects    *MockProjectProvider
	persons     *MockPersonProvider
	ctrl        Controller
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		entries:     new(MockTimeEntryProvider),
		assignments: new(MockAssignmentProvider),
		projects:    new(MockProjectProvider),
		persons:     new(MockPersonProvider),
	}
	store := cache.NewStore(memory.NewBackend(), time.Minute)
	f.ctrl = NewController(Providers{
		TimeEntries: f.entries,
		Assignments: f.assignments,
		Projects:    f.projects,
		Persons:     f.persons,
	}, store, Settings{DailyCapacityHours: 8})
	return f
}

func testRange(t *testing.T) domain.DateRange {
	t.Helper()
	rng, err := domain.ParseDateRange("2021-04-05", "2021-04-11")
	require.NoError(t, err)
	return rng
}

func TestController_GetTimeEntries_Caching(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	rng := testRange(t)

	expected := []domain.TimeEntry{entry(7, "Atlas", "2021-04-05", 5, true)}
	f.entries.On("FetchTimeEntries", ctx, []int64(nil), rng, (*int64)(nil)).
		Return(expected, nil).Once()

	first, err := f.ctrl.GetTimeEntries(ctx, nil, rng, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, first)

	// Second call within the TTL is served from cache.
	second, err := f.ctrl.GetTimeEntries(ctx, nil, rng, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, second)

	f.entries.AssertNumberOfCalls(t, "FetchTimeEntries", 1)
}

func TestController_GetAssignments_ComputesAllocation(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	rng := testRange(t)

	raw := []domain.AssignmentEntry{{
		ID:                1,
		Project:           &domain.AssignmentProject{HarvestID: 7, Name: "Atlas"},
		StartDate:         day("2021-04-05"),
		EndDate:           day("2021-04-09"),
		AllocationSeconds: 6 * 3600,
	}}
	f.assignments.On("FetchAssignments", ctx, rng, (*int64)(nil)).
		Return(raw, nil).Once()

	assignments, err := f.ctrl.GetAssignments(ctx, rng, nil)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, 5, assignments[0].Days)
	assert.Equal(t, 6.0, assignments[0].HoursPerDay)
	assert.Equal(t, 30.0, assignments[0].TotalHours)
}

func TestController_GetProjectHours(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	rng := testRange(t)

	f.entries.On("FetchTimeEntries", ctx, []int64(nil), rng, (*int64)(nil)).
		Return([]domain.TimeEntry{entry(7, "Atlas", "2021-04-05", 5, true)}, nil)
	f.assignments.On("FetchAssignments", ctx, rng, (*int64)(nil)).
		Return([]domain.AssignmentEntry{{
			Project:           &domain.AssignmentProject{HarvestID: 7, Name: "Atlas"},
			StartDate:         day("2021-04-05"),
			EndDate:           day("2021-04-09"),
			AllocationSeconds: 2 * 3600,
		}}, nil)

	summaries, err := f.ctrl.GetProjectHours(ctx, rng)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 5.0, summaries[0].HoursSpent)
	assert.Equal(t, 10.0, summaries[0].HoursPlanned)
}

func TestController_GetReport(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	rng := testRange(t)

	f.entries.On("FetchTimeEntries", ctx, []int64(nil), rng, (*int64)(nil)).
		Return([]domain.TimeEntry{
			entry(7, "Atlas", "2021-04-05", 10, true),
			entry(7, "Atlas", "2021-04-06", 4, false),
		}, nil)
	f.assignments.On("FetchAssignments", ctx, rng, (*int64)(nil)).
		Return([]domain.AssignmentEntry{{
			Project:           &domain.AssignmentProject{HarvestID: 7, Name: "Atlas"},
			StartDate:         day("2021-04-05"),
			EndDate:           day("2021-04-09"),
			AllocationSeconds: 8 * 3600,
		}}, nil)

	result, err := f.ctrl.GetReport(ctx, rng)
	require.NoError(t, err)

	assert.Equal(t, rng, result.Period)
	assert.Equal(t, domain.IntervalWeek, result.Interval)
	require.Len(t, result.Projects, 1)
	assert.Equal(t, 14.0, result.TotalSpent)
	assert.Equal(t, 40.0, result.TotalPlanned)

	// Dense series over the whole week, sorted.
	require.Len(t, result.PerDay, 7)
	assert.Equal(t, 10.0, result.PerDay[0].Hours)
	assert.Equal(t, 4.0, result.PerDay[1].Hours)

	// One 10h day over an 8h capacity.
	require.Len(t, result.Overtime, 7)
	assert.Equal(t, 2.0, result.Overtime[0].Hours)
	assert.Equal(t, 0.0, result.Overtime[1].Hours)

	assert.Equal(t, 10.0, result.Split.Billable)
	assert.Equal(t, 4.0, result.Split.NonBillable)
	assert.InDelta(t, 100*10.0/14.0, result.BillablePercent, 1e-9)

	assert.Equal(t, 5, result.BusinessDays)
	assert.InDelta(t, 14.0/5.0, result.AveragePerDay, 1e-9)
}

func TestController_GetLookups_Caching(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	f.projects.On("FetchProjects", ctx).
		Return([]domain.Project{{ID: 7, Name: "Atlas"}}, nil).Once()
	f.persons.On("FetchPersons", ctx).
		Return([]domain.Person{{ID: 1, Name: "Ada"}}, nil).Once()

	for i := 0; i < 3; i++ {
		projects, err := f.ctrl.GetProjects(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, 1)

		persons, err := f.ctrl.GetPersons(ctx)
		require.NoError(t, err)
		assert.Len(t, persons, 1)
	}

	f.projects.AssertNumberOfCalls(t, "FetchProjects", 1)
	f.persons.AssertNumberOfCalls(t, "FetchPersons", 1)
}

func TestController_ProviderFailure(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	rng := testRange(t)

	f.entries.On("FetchTimeEntries", ctx, []int64(nil), rng, (*int64)(nil)).
		Return([]domain.TimeEntry(nil), errors.New("upstream down"))

	_, err := f.ctrl.GetTimeEntries(ctx, nil, rng, nil)
	assert.Error(t, err)
}
