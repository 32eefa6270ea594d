package resume

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// Grading types accepted for education grades.
const (
	GradingPercentage = "percentage"
	GradingCGPA       = "cgpa"
)

// Resume is the root aggregate. Children belong to exactly one resume and
// are only reachable through it; deleting a resume cascades to all of them.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Aggregate is a resume with all five child collections loaded as one
// consistent snapshot. Export always operates on an Aggregate.
type Aggregate struct {
	Resume
	Experiences    []Experience    `json:"experiences"`
	Projects       []Project       `json:"projects"`
	Skills         []Skill         `json:"skills"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
}

type Experience struct {
	ID               uuid.UUID  `json:"id"`
	ResumeID         uuid.UUID  `json:"resume_id"`
	JobTitle         string     `json:"job_title"`
	Company          string     `json:"company"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking bool       `json:"currently_working"`
	Description      string     `json:"description"`
	CreatedAt        time.Time  `json:"created_at"`
}

type Project struct {
	ID           uuid.UUID `json:"id"`
	ResumeID     uuid.UUID `json:"resume_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies,omitempty"`
	Link         string    `json:"link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Skill groups comma-separated items under a category label. Order is an
// advisory sort key: assigned max+1 on create, never enforced unique.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	ResumeID  uuid.UUID `json:"resume_id"`
	Category  string    `json:"category"`
	Items     string    `json:"items"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type Education struct {
	ID             uuid.UUID `json:"id"`
	ResumeID       uuid.UUID `json:"resume_id"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study,omitempty"`
	School         string    `json:"school"`
	GraduationYear *int      `json:"graduation_year,omitempty"`
	// Grade is only meaningful together with GradingType; renderers must not
	// show one without the other.
	GradingType string    `json:"grading_type,omitempty"`
	Grade       *float64  `json:"grade,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Certification struct {
	ID        uuid.UUID `json:"id"`
	ResumeID  uuid.UUID `json:"resume_id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Date      time.Time `json:"date"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
