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

type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) (*ExperienceRepository, error) {
	r := &ExperienceRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ExperienceRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS experiences (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	job_title TEXT NOT NULL,
	company TEXT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE,
	currently_working BOOLEAN NOT NULL DEFAULT FALSE,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_experiences_resume_id ON experiences(resume_id);
`)
	return err
}

const experienceColumns = `id, resume_id, job_title, company, start_date, end_date, currently_working, description, created_at`

func scanExperience(row pgx.Row) (resume.Experience, error) {
	var e resume.Experience
	var created time.Time
	err := row.Scan(&e.ID, &e.ResumeID, &e.JobTitle, &e.Company, &e.StartDate,
		&e.EndDate, &e.CurrentlyWorking, &e.Description, &created)
	if err != nil {
		return resume.Experience{}, err
	}
	e.CreatedAt = created.UTC()
	return e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e resume.Experience) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO experiences (`+experienceColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, e.ID, e.ResumeID, e.JobTitle, e.Company, e.StartDate, e.EndDate, e.CurrentlyWorking, e.Description, e.CreatedAt)
	return err
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Experience, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)
	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Experience{}, resume.ErrNotFound
		}
		return resume.Experience{}, err
	}
	return e, nil
}

func (r *ExperienceRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Experience, error) {
	rows, err := r.pool.Query(ctx, `
SELECT e.id, e.resume_id, e.job_title, e.company, e.start_date, e.end_date, e.currently_working, e.description, e.created_at
FROM experiences e
JOIN resumes r ON r.id = e.resume_id
WHERE r.user_id = $1
ORDER BY e.created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepository) Update(ctx context.Context, e resume.Experience) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE experiences
SET job_title = $2, company = $3, start_date = $4, end_date = $5, currently_working = $6, description = $7
WHERE id = $1
`, e.ID, e.JobTitle, e.Company, e.StartDate, e.EndDate, e.CurrentlyWorking, e.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
