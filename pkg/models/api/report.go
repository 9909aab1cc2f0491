package api

// API models mirror the domain report types at the JSON boundary. Dates
// cross as yyyy-MM-dd strings; percentages that can carry "no data" are
// pointers, serialized as null.

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Navigation struct {
	Range    DateRange `json:"range"`
	Interval string    `json:"interval"`
	Previous DateRange `json:"previous"`
	Next     DateRange `json:"next"`
}

type ProjectHoursSummary struct {
	Name         string  `json:"name"`
	Code         string  `json:"code,omitempty"`
	HoursSpent   float64 `json:"hoursSpent"`
	HoursPlanned float64 `json:"hoursPlanned"`
}

type DayBucket struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type BillableSplit struct {
	Billable    float64 `json:"billable"`
	NonBillable float64 `json:"nonBillable"`
}

type Report struct {
	Period          DateRange             `json:"period"`
	Interval        string                `json:"interval"`
	Projects        []ProjectHoursSummary `json:"projects"`
	PerDay          []DayBucket           `json:"perDay"`
	Overtime        []DayBucket           `json:"overtime"`
	Split           BillableSplit         `json:"split"`
	BillablePercent *float64              `json:"billablePercent"`
	TotalSpent      float64               `json:"totalSpent"`
	TotalPlanned    float64               `json:"totalPlanned"`
	BusinessDays    int                   `json:"businessDays"`
	AveragePerDay   *float64              `json:"averagePerDay"`
}
