package export

import (
	"strconv"
	"strings"

	"resume-builder/pkg/resume"
)

// Document is the intermediate representation both renderers consume: a
// header block followed by sections in a fixed order. Empty sections are
// omitted at build time, so renderers emit whatever they are given.
type Document struct {
	Title    string
	Contacts []string
	Sections []Section
}

type Section struct {
	Heading string
	Entries []Entry
}

// Entry is one block within a section. Title renders bold, DateRange italic
// (only when non-empty), Text as plain body, Meta as a small secondary line,
// Bullets as list items.
type Entry struct {
	Title     string
	DateRange string
	Text      string
	Meta      string
	Bullets   []string
	Link      string
}

// Section headings, in emission order.
const (
	headingSummary        = "Professional Summary"
	headingExperience     = "Professional Experience"
	headingProjects       = "Projects"
	headingSkills         = "Skills"
	headingEducation      = "Education"
	headingCertifications = "Certifications"
)

// Build converts a loaded aggregate into the section IR. The requested
// template name is cosmetic only and does not change the content.
func Build(agg resume.Aggregate) *Document {
	doc := &Document{
		Title:    agg.Title,
		Contacts: buildContacts(agg.Resume),
	}

	if strings.TrimSpace(agg.Summary) != "" {
		doc.Sections = append(doc.Sections, Section{
			Heading: headingSummary,
			Entries: []Entry{{Text: agg.Summary}},
		})
	}

	if len(agg.Experiences) > 0 {
		sec := Section{Heading: headingExperience}
		for _, exp := range agg.Experiences {
			sec.Entries = append(sec.Entries, Entry{
				Title:     joinDash(exp.JobTitle, exp.Company),
				DateRange: experienceDateRange(exp),
				Bullets:   SplitBullets(exp.Description),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(agg.Projects) > 0 {
		sec := Section{Heading: headingProjects}
		for _, proj := range agg.Projects {
			sec.Entries = append(sec.Entries, Entry{
				Title:   joinDash(proj.Name, proj.Technologies),
				Bullets: SplitBullets(proj.Description),
				Link:    proj.Link,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(agg.Skills) > 0 {
		// Skills arrive ordered by their stored order key.
		sec := Section{Heading: headingSkills}
		for _, sk := range agg.Skills {
			sec.Entries = append(sec.Entries, Entry{
				Text: strings.TrimSpace(sk.Category + ": " + sk.Items),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(agg.Educations) > 0 {
		sec := Section{Heading: headingEducation}
		for _, edu := range agg.Educations {
			entry := Entry{Title: educationLine(edu)}
			if edu.GraduationYear != nil {
				entry.Meta = strconv.Itoa(*edu.GraduationYear)
			}
			sec.Entries = append(sec.Entries, entry)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(agg.Certifications) > 0 {
		sec := Section{Heading: headingCertifications}
		for _, cert := range agg.Certifications {
			date := cert.Date
			line := cert.Name + " – " + cert.Issuer
			if when := FormatDate(&date); when != "" {
				line += " (" + when + ")"
			}
			sec.Entries = append(sec.Entries, Entry{
				Text: strings.TrimSpace(line),
				Link: cert.Link,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc
}

// buildContacts filters empty contact fields, preserving source order.
func buildContacts(r resume.Resume) []string {
	var out []string
	if r.Email != "" {
		out = append(out, r.Email)
	}
	if r.Phone != "" {
		out = append(out, r.Phone)
	}
	if r.Location != "" {
		out = append(out, r.Location)
	}
	if r.LinkedIn != "" {
		out = append(out, "LinkedIn: "+r.LinkedIn)
	}
	if r.GitHub != "" {
		out = append(out, "GitHub: "+r.GitHub)
	}
	return out
}

// experienceDateRange renders "start – Present" while the position is held,
// otherwise "start – end" with an empty end when no end date is stored.
func experienceDateRange(exp resume.Experience) string {
	start := exp.StartDate
	from := FormatDate(&start)
	var to string
	if exp.CurrentlyWorking {
		to = "Present"
	} else {
		to = FormatDate(exp.EndDate)
	}
	return strings.TrimSpace(from + " – " + to)
}

// educationLine renders "school - degree[ in field][ — grade]". The grade is
// shown only when both grading type and value are present.
func educationLine(edu resume.Education) string {
	line := joinDash(edu.School, edu.Degree)
	if edu.FieldOfStudy != "" {
		line += " in " + edu.FieldOfStudy
	}
	if edu.GradingType != "" && edu.Grade != nil {
		switch edu.GradingType {
		case resume.GradingPercentage:
			line += " — " + FormatGrade(*edu.Grade) + "%"
		case resume.GradingCGPA:
			line += " — " + FormatGrade(*edu.Grade) + " CGPA"
		}
	}
	return strings.TrimSpace(line)
}

// joinDash joins two fragments with " - ", dropping an empty side.
func joinDash(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " - " + b
}
