package report

import (
	"context"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// Upstream data providers. The raw API clients behind these are
// external collaborators; the engine only ever sees typed records.

type TimeEntryProvider interface {
	FetchTimeEntries(
		ctx context.Context,
		userIDs []int64,
		rng domain.DateRange,
		projectID *int64,
	) ([]domain.TimeEntry, error)
}

type AssignmentProvider interface {
	FetchAssignments(
		ctx context.Context,
		rng domain.DateRange,
		projectID *int64,
	) ([]domain.AssignmentEntry, error)
}

type ProjectProvider interface {
	FetchProjects(ctx context.Context) ([]domain.Project, error)
}

type PersonProvider interface {
	FetchPersons(ctx context.Context) ([]domain.Person, error)
}

type Providers struct {
	TimeEntries TimeEntryProvider
	Assignments AssignmentProvider
	Projects    ProjectProvider
	Persons     PersonProvider
}
