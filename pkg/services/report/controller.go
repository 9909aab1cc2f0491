package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/time-atlas/pkg/cache"
	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/services/daterange"
)

// Controller assembles dashboard summaries for a date range, fetching
// upstream records through the cache.
type Controller interface {
	GetTimeEntries(ctx context.Context, userIDs []int64, rng domain.DateRange, projectID *int64) ([]domain.TimeEntry, error)
	GetAssignments(ctx context.Context, rng domain.DateRange, projectID *int64) ([]domain.AssignmentEntry, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetPersons(ctx context.Context) ([]domain.Person, error)

	GetProjectHours(ctx context.Context, rng domain.DateRange) ([]domain.ProjectHoursSummary, error)
	GetDailyHours(ctx context.Context, rng domain.DateRange, dense bool) ([]domain.DayBucket, error)
	GetOvertime(ctx context.Context, rng domain.DateRange) ([]domain.DayBucket, error)
	GetReport(ctx context.Context, rng domain.DateRange) (*domain.Report, error)
}

type Settings struct {
	// DailyCapacityHours is the per-person daily capacity used for the
	// overtime series.
	DailyCapacityHours float64
}

type controller struct {
	providers Providers
	store     *cache.Store
	settings  Settings
}

func NewController(providers Providers, store *cache.Store, settings Settings) Controller {
	return &controller{
		providers: providers,
		store:     store,
		settings:  settings,
	}
}

func entriesCacheKey(userIDs []int64, rng domain.DateRange, projectID *int64) string {
	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return fmt.Sprintf("harvest:entries:%s:u=%s:p=%s", rng, strings.Join(ids, ","), formatProjectID(projectID))
}

func assignmentsCacheKey(rng domain.DateRange, projectID *int64) string {
	return fmt.Sprintf("forecast:assignments:%s:p=%s", rng, formatProjectID(projectID))
}

func formatProjectID(projectID *int64) string {
	if projectID == nil {
		return "all"
	}
	return strconv.FormatInt(*projectID, 10)
}

func (c *controller) GetTimeEntries(
	ctx context.Context,
	userIDs []int64,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.TimeEntry, error) {
	key := entriesCacheKey(userIDs, rng, projectID)
	entries, err := cache.Fetch(ctx, c.store, key, c.store.DefaultTTL(),
		func(ctx context.Context) ([]domain.TimeEntry, error) {
			return c.providers.TimeEntries.FetchTimeEntries(ctx, userIDs, rng, projectID)
		})
	if err != nil {
		return nil, fmt.Errorf("fetch time entries for %s: %w", rng, err)
	}
	return entries, nil
}

func (c *controller) GetAssignments(
	ctx context.Context,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.AssignmentEntry, error) {
	key := assignmentsCacheKey(rng, projectID)
	assignments, err := cache.Fetch(ctx, c.store, key, c.store.DefaultTTL(),
		func(ctx context.Context) ([]domain.AssignmentEntry, error) {
			return c.providers.Assignments.FetchAssignments(ctx, rng, projectID)
		})
	if err != nil {
		return nil, fmt.Errorf("fetch assignments for %s: %w", rng, err)
	}

	// Derived allocation figures depend on the requested window, so they
	// are recomputed on the cached raw records.
	computed := make([]domain.AssignmentEntry, 0, len(assignments))
	for _, a := range assignments {
		computed = append(computed, a.WithComputed(rng))
	}
	return computed, nil
}

func (c *controller) GetProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := cache.Fetch(ctx, c.store, "harvest:projects", c.store.DefaultTTL(),
		func(ctx context.Context) ([]domain.Project, error) {
			return c.providers.Projects.FetchProjects(ctx)
		})
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return projects, nil
}

func (c *controller) GetPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := cache.Fetch(ctx, c.store, "harvest:persons", c.store.DefaultTTL(),
		func(ctx context.Context) ([]domain.Person, error) {
			return c.providers.Persons.FetchPersons(ctx)
		})
	if err != nil {
		return nil, fmt.Errorf("fetch persons: %w", err)
	}
	return persons, nil
}

func (c *controller) GetProjectHours(ctx context.Context, rng domain.DateRange) ([]domain.ProjectHoursSummary, error) {
	entries, err := c.GetTimeEntries(ctx, nil, rng, nil)
	if err != nil {
		return nil, err
	}
	assignments, err := c.GetAssignments(ctx, rng, nil)
	if err != nil {
		return nil, err
	}

	summaries, diag := JoinProjectHours(entries, assignments)
	if !diag.Empty() {
		zerolog.Ctx(ctx).Debug().
			Int("entries", diag.SkippedEntries).
			Int("assignments", diag.SkippedAssignments).
			Msg("skipped records without project identity")
	}
	return summaries, nil
}

func (c *controller) GetDailyHours(ctx context.Context, rng domain.DateRange, dense bool) ([]domain.DayBucket, error) {
	entries, err := c.GetTimeEntries(ctx, nil, rng, nil)
	if err != nil {
		return nil, err
	}
	if dense {
		return BucketByDay(entries, &rng), nil
	}
	return BucketByDay(entries, nil), nil
}

func (c *controller) GetOvertime(ctx context.Context, rng domain.DateRange) ([]domain.DayBucket, error) {
	buckets, err := c.GetDailyHours(ctx, rng, true)
	if err != nil {
		return nil, err
	}
	return OvertimePerDay(buckets, c.settings.DailyCapacityHours), nil
}

func (c *controller) GetReport(ctx context.Context, rng domain.DateRange) (*domain.Report, error) {
	entries, err := c.GetTimeEntries(ctx, nil, rng, nil)
	if err != nil {
		return nil, err
	}
	assignments, err := c.GetAssignments(ctx, rng, nil)
	if err != nil {
		return nil, err
	}

	summaries, diag := JoinProjectHours(entries, assignments)
	if !diag.Empty() {
		zerolog.Ctx(ctx).Debug().
			Int("entries", diag.SkippedEntries).
			Int("assignments", diag.SkippedAssignments).
			Msg("skipped records without project identity")
	}

	perDay := BucketByDay(entries, &rng)
	split := BillableSplit(entries)

	var totalSpent, totalPlanned float64
	for _, s := range summaries {
		totalSpent += s.HoursSpent
		totalPlanned += s.HoursPlanned
	}

	businessDays := daterange.BusinessDays(rng)

	return &domain.Report{
		Period:          rng,
		Interval:        daterange.Classify(rng),
		Projects:        summaries,
		PerDay:          perDay,
		Overtime:        OvertimePerDay(perDay, c.settings.DailyCapacityHours),
		Split:           split,
		BillablePercent: BillablePercentage(split),
		TotalSpent:      totalSpent,
		TotalPlanned:    totalPlanned,
		BusinessDays:    businessDays,
		AveragePerDay:   AveragePerDay(totalSpent, businessDays),
	}, nil
}
