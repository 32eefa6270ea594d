package jobsearch

import "context"

// Query carries the normalized search filters accepted by the public
// job-search endpoint.
type Query struct {
	Role       string
	Experience string
	Location   string
	Salary     int
	Type       string
	Site       string
	Page       int
}

// Job is the fixed display shape returned to clients.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ApplyLink   string `json:"apply_link"`
	Site        string `json:"site"`
	Salary      string `json:"salary"`
}

// Master data reference lists served by /job-master-data.
type JobSite struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Designation struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type JobType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ExperienceBand struct {
	ID       int    `json:"id"`
	Level    string `json:"level"`
	MinYears int    `json:"min_years"`
	MaxYears int    `json:"max_years"`
}

type Location struct {
	ID      int    `json:"id"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type SalaryBand struct {
	ID        int    `json:"id"`
	MinSalary int    `json:"min_salary"`
	MaxSalary int    `json:"max_salary"`
	Currency  string `json:"currency"`
}

// MasterData bundles all reference lists into one response.
type MasterData struct {
	JobSites     []JobSite        `json:"jobSites"`
	Designations []Designation    `json:"designations"`
	JobTypes     []JobType        `json:"jobTypes"`
	Experiences  []ExperienceBand `json:"experiences"`
	Locations    []Location       `json:"locations"`
	Salaries     []SalaryBand     `json:"salaries"`
}

// MasterDataRepository is the persistence port for the reference lists.
type MasterDataRepository interface {
	Load(ctx context.Context) (MasterData, error)
}
