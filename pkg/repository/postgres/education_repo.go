package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resume-builder/pkg/resume"
)

type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(pool *pgxpool.Pool) (*EducationRepository, error) {
	r := &EducationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *EducationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS educations (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	degree TEXT NOT NULL,
	field_of_study TEXT NOT NULL DEFAULT '',
	school TEXT NOT NULL,
	graduation_year INTEGER,
	grading_type TEXT,
	grade NUMERIC(5,2),
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_educations_resume_id ON educations(resume_id);
`)
	return err
}

const educationColumns = `id, resume_id, degree, field_of_study, school, graduation_year, grading_type, grade, created_at`

func scanEducation(row pgx.Row) (resume.Education, error) {
	var e resume.Education
	var created time.Time
	var gradingType *string
	err := row.Scan(&e.ID, &e.ResumeID, &e.Degree, &e.FieldOfStudy, &e.School,
		&e.GraduationYear, &gradingType, &e.Grade, &created)
	if err != nil {
		return resume.Education{}, err
	}
	if gradingType != nil {
		e.GradingType = *gradingType
	}
	e.CreatedAt = created.UTC()
	return e, nil
}

func (r *EducationRepository) Create(ctx context.Context, e resume.Education) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO educations (`+educationColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, e.ID, e.ResumeID, e.Degree, e.FieldOfStudy, e.School, e.GraduationYear, nullableString(e.GradingType), e.Grade, e.CreatedAt)
	return err
}

func (r *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Education, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+educationColumns+` FROM educations WHERE id = $1`, id)
	e, err := scanEducation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Education{}, resume.ErrNotFound
		}
		return resume.Education{}, err
	}
	return e, nil
}

func (r *EducationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Education, error) {
	rows, err := r.pool.Query(ctx, `
SELECT e.id, e.resume_id, e.degree, e.field_of_study, e.school, e.graduation_year, e.grading_type, e.grade, e.created_at
FROM educations e
JOIN resumes r ON r.id = e.resume_id
WHERE r.user_id = $1
ORDER BY e.created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepository) Update(ctx context.Context, e resume.Education) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE educations
SET degree = $2, field_of_study = $3, school = $4, graduation_year = $5, grading_type = $6, grade = $7
WHERE id = $1
`, e.ID, e.Degree, e.FieldOfStudy, e.School, e.GraduationYear, nullableString(e.GradingType), e.Grade)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
