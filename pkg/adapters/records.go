package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
)

func MapStoreTimeEntryToDomain(record store.TimeEntryRecord) (domain.TimeEntry, error) {
	spent, err := time.ParseInLocation(domain.DateFormat, record.SpentDate, time.UTC)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("parse spent_date %q: %w", record.SpentDate, err)
	}

	return domain.TimeEntry{
		ID:        record.ID,
		User:      domain.EntryUser{ID: record.User.ID, Name: record.User.Name},
		Project:   domain.EntryProject{ID: record.Project.ID, Name: record.Project.Name, Code: record.Project.Code},
		Task:      domain.EntryTask{Name: record.Task.Name},
		Client:    domain.EntryClient{Name: record.Client.Name},
		SpentDate: spent,
		Hours:     record.Hours,
		Billable:  record.Billable,
		IsRunning: record.IsRunning,
	}, nil
}

func MapStoreAssignmentToDomain(record store.AssignmentRecord) (domain.AssignmentEntry, error) {
	start, err := time.ParseInLocation(domain.DateFormat, record.StartDate, time.UTC)
	if err != nil {
		return domain.AssignmentEntry{}, fmt.Errorf("parse start_date %q: %w", record.StartDate, err)
	}
	end, err := time.ParseInLocation(domain.DateFormat, record.EndDate, time.UTC)
	if err != nil {
		return domain.AssignmentEntry{}, fmt.Errorf("parse end_date %q: %w", record.EndDate, err)
	}

	entry := domain.AssignmentEntry{
		ID:                record.ID,
		StartDate:         start,
		EndDate:           end,
		AllocationSeconds: record.Allocation,
	}
	if record.Project != nil {
		entry.Project = &domain.AssignmentProject{
			ID:        record.Project.ID,
			HarvestID: record.Project.HarvestID,
			Name:      record.Project.Name,
			Code:      record.Project.Code,
		}
	}
	if record.Person != nil {
		entry.Person = &domain.AssignmentPerson{
			ID:   record.Person.ID,
			Name: record.Person.Name,
		}
	}
	return entry, nil
}

func MapStoreProjectToDomain(record store.ProjectRecord) domain.Project {
	return domain.Project{
		ID:   record.ID,
		Name: record.Name,
		Code: record.Code,
	}
}

func MapStorePersonToDomain(record store.PersonRecord) domain.Person {
	return domain.Person{
		ID:    record.ID,
		Name:  strings.TrimSpace(record.FirstName + " " + record.LastName),
		Email: record.Email,
	}
}
