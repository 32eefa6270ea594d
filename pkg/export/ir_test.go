package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/pkg/resume"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullAggregate() resume.Aggregate {
	end := date(2022, time.June, 30)
	year := 2020
	grade := 8.5
	return resume.Aggregate{
		Resume: resume.Resume{
			ID:       uuid.New(),
			Title:    "Backend Engineer",
			Email:    "dev@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin",
			LinkedIn: "https://linkedin.com/in/dev",
			GitHub:   "https://github.com/dev",
			Summary:  "Seasoned backend engineer.",
		},
		Experiences: []resume.Experience{
			{
				JobTitle:         "Senior Engineer",
				Company:          "ACME",
				StartDate:        date(2022, time.July, 1),
				CurrentlyWorking: true,
				Description:      "Built the platform\nScaled the database",
			},
			{
				JobTitle:  "Engineer",
				Company:   "Initech",
				StartDate: date(2020, time.January, 1),
				EndDate:   &end,
			},
		},
		Projects: []resume.Project{
			{Name: "ledger", Technologies: "Go, Postgres", Description: "Double-entry ledger", Link: "https://github.com/dev/ledger"},
		},
		Skills: []resume.Skill{
			{Category: "Languages", Items: "Go, SQL", Order: 1},
			{Category: "Tools", Items: "Docker", Order: 2},
		},
		Educations: []resume.Education{
			{School: "TU Berlin", Degree: "BSc", FieldOfStudy: "CS", GraduationYear: &year, GradingType: resume.GradingCGPA, Grade: &grade},
		},
		Certifications: []resume.Certification{
			{Name: "CKA", Issuer: "CNCF", Date: date(2023, time.February, 1), Link: "https://example.com/cka"},
		},
	}
}

func TestBuildSectionOrder(t *testing.T) {
	doc := Build(fullAggregate())

	var headings []string
	for _, s := range doc.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"Professional Summary",
		"Professional Experience",
		"Projects",
		"Skills",
		"Education",
		"Certifications",
	}, headings)
}

func TestBuildOmitsEmptySections(t *testing.T) {
	agg := resume.Aggregate{Resume: resume.Resume{Title: "Minimal", Email: "a@b.c"}}
	doc := Build(agg)

	assert.Empty(t, doc.Sections)
	assert.Equal(t, []string{"a@b.c"}, doc.Contacts)
}

func TestBuildContacts(t *testing.T) {
	doc := Build(fullAggregate())
	assert.Equal(t, []string{
		"dev@example.com",
		"+1 555 0100",
		"Berlin",
		"LinkedIn: https://linkedin.com/in/dev",
		"GitHub: https://github.com/dev",
	}, doc.Contacts)
}

func TestBuildExperienceEntries(t *testing.T) {
	doc := Build(fullAggregate())
	sec := doc.Sections[1]
	require.Len(t, sec.Entries, 2)

	assert.Equal(t, "Senior Engineer - ACME", sec.Entries[0].Title)
	assert.Equal(t, "Jul 2022 – Present", sec.Entries[0].DateRange)
	assert.Equal(t, []string{"Built the platform", "Scaled the database"}, sec.Entries[0].Bullets)

	assert.Equal(t, "Jan 2020 – Jun 2022", sec.Entries[1].DateRange)
	assert.Empty(t, sec.Entries[1].Bullets)
}

func TestBuildEducationLine(t *testing.T) {
	doc := Build(fullAggregate())
	sec := doc.Sections[4]
	require.Len(t, sec.Entries, 1)
	assert.Equal(t, "TU Berlin - BSc in CS — 8.5 CGPA", sec.Entries[0].Title)
	assert.Equal(t, "2020", sec.Entries[0].Meta)
}

func TestBuildEducationGradeNeedsBothFields(t *testing.T) {
	grade := 75.0
	agg := resume.Aggregate{
		Resume: resume.Resume{Title: "x"},
		Educations: []resume.Education{
			{School: "MIT", Degree: "BSc", Grade: &grade},
		},
	}
	doc := Build(agg)
	assert.Equal(t, "MIT - BSc", doc.Sections[0].Entries[0].Title)
}

func TestBuildCertificationLine(t *testing.T) {
	doc := Build(fullAggregate())
	sec := doc.Sections[5]
	require.Len(t, sec.Entries, 1)
	assert.Equal(t, "CKA – CNCF (Feb 2023)", sec.Entries[0].Text)
	assert.Equal(t, "https://example.com/cka", sec.Entries[0].Link)
}

func TestBuildProjectTitle(t *testing.T) {
	doc := Build(fullAggregate())
	sec := doc.Sections[2]
	assert.Equal(t, "ledger - Go, Postgres", sec.Entries[0].Title)
	assert.Equal(t, []string{"Double-entry ledger"}, sec.Entries[0].Bullets)
}
