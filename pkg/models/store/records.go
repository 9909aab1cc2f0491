package store

// Raw upstream records as they appear in exported payloads. The domain
// layer never sees these; adapters map them over.

type TimeEntryRecord struct {
	ID   int64 `json:"id"`
	User struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
	Project struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"project"`
	Task struct {
		Name string `json:"name"`
	} `json:"task"`
	Client struct {
		Name string `json:"name"`
	} `json:"client"`
	SpentDate string  `json:"spent_date"`
	Hours     float64 `json:"hours"`
	Billable  bool    `json:"billable"`
	IsRunning bool    `json:"is_running"`
}

type AssignmentRecord struct {
	ID      int64 `json:"id"`
	Project *struct {
		ID        int64  `json:"id"`
		HarvestID int64  `json:"harvest_id"`
		Name      string `json:"name"`
		Code      string `json:"code"`
	} `json:"project"`
	Person *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"person"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Allocation int64  `json:"allocation"`
}

type ProjectRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type PersonRecord struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
