package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resume-builder/pkg/jobsearch"
)

// MasterDataRepository serves the static job reference lists. The tables are
// created and seeded on construction; seeding is idempotent.
type MasterDataRepository struct {
	pool *pgxpool.Pool
}

func NewMasterDataRepository(pool *pgxpool.Pool) (*MasterDataRepository, error) {
	r := &MasterDataRepository{pool: pool}
	ctx := context.Background()
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	if err := r.seed(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MasterDataRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_sites (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS job_designations (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS job_types (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS job_experiences (
	id SERIAL PRIMARY KEY,
	level TEXT NOT NULL UNIQUE,
	min_years INTEGER NOT NULL,
	max_years INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS job_locations (
	id SERIAL PRIMARY KEY,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	country TEXT NOT NULL,
	UNIQUE (city, state, country)
);
CREATE TABLE IF NOT EXISTS job_salaries (
	id SERIAL PRIMARY KEY,
	min_salary INTEGER NOT NULL,
	max_salary INTEGER NOT NULL,
	currency TEXT NOT NULL,
	UNIQUE (min_salary, max_salary, currency)
);
`)
	return err
}

func (r *MasterDataRepository) seed(ctx context.Context) error {
	sites := [][2]string{
		{"LinkedIn", "https://linkedin.com"},
		{"Indeed", "https://indeed.com"},
		{"Glassdoor", "https://glassdoor.com"},
		{"Naukri", "https://naukri.com"},
		{"Remotive", "https://remotive.com"},
		{"ArbeitNow", "https://www.arbeitnow.com"},
	}
	for _, s := range sites {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_sites (name, url) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING
`, s[0], s[1]); err != nil {
			return err
		}
	}

	designations := []string{
		"Frontend Developer", "Backend Developer", "Full Stack Developer",
		"React Developer", "Node.js Developer", "Python Developer",
		"Java Developer", "Mobile App Developer", "Android Developer",
		"iOS Developer", "Data Analyst", "Data Scientist",
		"Machine Learning Engineer", "AI Engineer", "UI/UX Designer",
		"Graphic Designer", "Product Designer", "Project Manager",
		"Product Manager", "Team Lead", "Technical Lead",
		"Engineering Manager", "DevOps Engineer", "Cloud Engineer",
		"System Administrator", "Network Engineer", "Cybersecurity Specialist",
	}
	for _, d := range designations {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_designations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING
`, d); err != nil {
			return err
		}
	}

	types := []string{"Full-time", "Part-time", "Internship", "Freelance", "Contract", "Temporary", "Remote", "Hybrid"}
	for _, t := range types {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING
`, t); err != nil {
			return err
		}
	}

	experiences := []jobsearch.ExperienceBand{
		{Level: "Internship", MinYears: 0, MaxYears: 0},
		{Level: "Entry Level", MinYears: 0, MaxYears: 1},
		{Level: "Junior", MinYears: 1, MaxYears: 3},
		{Level: "Mid Level", MinYears: 3, MaxYears: 6},
		{Level: "Senior", MinYears: 6, MaxYears: 10},
		{Level: "Lead", MinYears: 10, MaxYears: 15},
		{Level: "Director", MinYears: 15, MaxYears: 20},
	}
	for _, e := range experiences {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_experiences (level, min_years, max_years) VALUES ($1, $2, $3)
ON CONFLICT (level) DO NOTHING
`, e.Level, e.MinYears, e.MaxYears); err != nil {
			return err
		}
	}

	locations := []jobsearch.Location{
		{City: "Bengaluru", State: "Karnataka", Country: "India"},
		{City: "Hyderabad", State: "Telangana", Country: "India"},
		{City: "Pune", State: "Maharashtra", Country: "India"},
		{City: "Mumbai", State: "Maharashtra", Country: "India"},
		{City: "Chennai", State: "Tamil Nadu", Country: "India"},
		{City: "Gurugram", State: "Haryana", Country: "India"},
		{City: "Noida", State: "Uttar Pradesh", Country: "India"},
		{City: "New Delhi", State: "Delhi", Country: "India"},
		{City: "Kolkata", State: "West Bengal", Country: "India"},
		{City: "Ahmedabad", State: "Gujarat", Country: "India"},
	}
	for _, l := range locations {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_locations (city, state, country) VALUES ($1, $2, $3)
ON CONFLICT (city, state, country) DO NOTHING
`, l.City, l.State, l.Country); err != nil {
			return err
		}
	}

	// Salary bands in INR per annum.
	lakh := 100_000
	bands := [][2]int{{2, 4}, {4, 6}, {6, 10}, {10, 15}, {15, 20}, {20, 30}, {30, 40}, {40, 50}, {50, 60}, {60, 80}, {80, 100}}
	for _, b := range bands {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO job_salaries (min_salary, max_salary, currency) VALUES ($1, $2, $3)
ON CONFLICT (min_salary, max_salary, currency) DO NOTHING
`, b[0]*lakh, b[1]*lakh, "INR"); err != nil {
			return err
		}
	}
	return nil
}

func (r *MasterDataRepository) Load(ctx context.Context) (jobsearch.MasterData, error) {
	var md jobsearch.MasterData
	var err error
	if md.JobSites, err = r.loadSites(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	if md.Designations, err = r.loadDesignations(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	if md.JobTypes, err = r.loadTypes(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	if md.Experiences, err = r.loadExperiences(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	if md.Locations, err = r.loadLocations(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	if md.Salaries, err = r.loadSalaries(ctx); err != nil {
		return jobsearch.MasterData{}, err
	}
	return md, nil
}

func (r *MasterDataRepository) loadSites(ctx context.Context) ([]jobsearch.JobSite, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, url FROM job_sites ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.JobSite
	for rows.Next() {
		var s jobsearch.JobSite
		if err := rows.Scan(&s.ID, &s.Name, &s.URL); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *MasterDataRepository) loadDesignations(ctx context.Context) ([]jobsearch.Designation, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM job_designations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.Designation
	for rows.Next() {
		var d jobsearch.Designation
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *MasterDataRepository) loadTypes(ctx context.Context) ([]jobsearch.JobType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM job_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.JobType
	for rows.Next() {
		var t jobsearch.JobType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *MasterDataRepository) loadExperiences(ctx context.Context) ([]jobsearch.ExperienceBand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, level, min_years, max_years FROM job_experiences ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.ExperienceBand
	for rows.Next() {
		var e jobsearch.ExperienceBand
		if err := rows.Scan(&e.ID, &e.Level, &e.MinYears, &e.MaxYears); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *MasterDataRepository) loadLocations(ctx context.Context) ([]jobsearch.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, city, state, country FROM job_locations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.Location
	for rows.Next() {
		var l jobsearch.Location
		if err := rows.Scan(&l.ID, &l.City, &l.State, &l.Country); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *MasterDataRepository) loadSalaries(ctx context.Context) ([]jobsearch.SalaryBand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, min_salary, max_salary, currency FROM job_salaries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []jobsearch.SalaryBand
	for rows.Next() {
		var s jobsearch.SalaryBand
		if err := rows.Scan(&s.ID, &s.MinSalary, &s.MaxSalary, &s.Currency); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
