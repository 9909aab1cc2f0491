package domain

import "time"

// Project is an upstream time-tracking project as returned by the
// project lookup endpoint.
type Project struct {
	ID   int64
	Name string
	Code string
}

// Person is an upstream account member.
type Person struct {
	ID    int64
	Name  string
	Email string
}

type EntryUser struct {
	ID   int64
	Name string
}

type EntryProject struct {
	ID   int64
	Name string
	Code string
}

type EntryTask struct {
	Name string
}

type EntryClient struct {
	Name string
}

// TimeEntry is a single logged unit of work from the time-tracking
// upstream. Entries are immutable inputs; the aggregator never mutates
// them.
type TimeEntry struct {
	ID        int64
	User      EntryUser
	Project   EntryProject
	Task      EntryTask
	Client    EntryClient
	SpentDate time.Time
	Hours     float64
	Billable  bool
	IsRunning bool
}
