// Package file serves upstream records from exported JSON files. It
// implements the report provider interfaces for offline runs and
// composition without live API credentials.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/time-atlas/pkg/adapters"
	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
)

type Settings struct {
	EntriesPath     string
	AssignmentsPath string
	ProjectsPath    string
	PersonsPath     string
}

type Provider struct {
	settings Settings
}

func NewProvider(settings Settings) *Provider {
	return &Provider{settings: settings}
}

func readRecords[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file %q: %w", path, err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse records file %q: %w", path, err)
	}
	return records, nil
}

func (p *Provider) FetchTimeEntries(
	_ context.Context,
	userIDs []int64,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.TimeEntry, error) {
	records, err := readRecords[store.TimeEntryRecord](p.settings.EntriesPath)
	if err != nil {
		return nil, err
	}

	users := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}

	var entries []domain.TimeEntry
	for _, record := range records {
		entry, err := adapters.MapStoreTimeEntryToDomain(record)
		if err != nil {
			return nil, err
		}
		if !rng.Contains(entry.SpentDate) {
			continue
		}
		if len(users) > 0 && !users[entry.User.ID] {
			continue
		}
		if projectID != nil && entry.Project.ID != *projectID {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p *Provider) FetchAssignments(
	_ context.Context,
	rng domain.DateRange,
	projectID *int64,
) ([]domain.AssignmentEntry, error) {
	records, err := readRecords[store.AssignmentRecord](p.settings.AssignmentsPath)
	if err != nil {
		return nil, err
	}

	var assignments []domain.AssignmentEntry
	for _, record := range records {
		assignment, err := adapters.MapStoreAssignmentToDomain(record)
		if err != nil {
			return nil, err
		}
		span := domain.DateRange{
			Start: domain.Midnight(assignment.StartDate),
			End:   domain.Midnight(assignment.EndDate),
		}
		if _, ok := span.Clamp(rng); !ok {
			continue
		}
		if projectID != nil &&
			(assignment.Project == nil || assignment.Project.HarvestID != *projectID) {
			continue
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func (p *Provider) FetchProjects(_ context.Context) ([]domain.Project, error) {
	records, err := readRecords[store.ProjectRecord](p.settings.ProjectsPath)
	if err != nil {
		return nil, err
	}
	var projects []domain.Project
	for _, record := range records {
		projects = append(projects, adapters.MapStoreProjectToDomain(record))
	}
	return projects, nil
}

func (p *Provider) FetchPersons(_ context.Context) ([]domain.Person, error) {
	records, err := readRecords[store.PersonRecord](p.settings.PersonsPath)
	if err != nil {
		return nil, err
	}
	var persons []domain.Person
	for _, record := range records {
		persons = append(persons, adapters.MapStorePersonToDomain(record))
	}
	return persons, nil
}
