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

// ResumeRepository stores the resume root. Child tables reference it with
// ON DELETE CASCADE, so deleting a resume removes the whole aggregate.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	github TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resumes_user_id ON resumes(user_id);
`)
	return err
}

const resumeColumns = `id, user_id, title, email, phone, location, linkedin, github, summary, created_at, updated_at`

func scanResume(row pgx.Row) (resume.Resume, error) {
	var m resume.Resume
	var created, updated time.Time
	err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Email, &m.Phone,
		&m.Location, &m.LinkedIn, &m.GitHub, &m.Summary, &created, &updated)
	if err != nil {
		return resume.Resume{}, err
	}
	m.CreatedAt = created.UTC()
	m.UpdatedAt = updated.UTC()
	return m, nil
}

func (r *ResumeRepository) Create(ctx context.Context, m resume.Resume) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (`+resumeColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, m.ID, m.UserID, m.Title, m.Email, m.Phone, m.Location, m.LinkedIn, m.GitHub, m.Summary, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	m, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	return m, nil
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+resumeColumns+` FROM resumes WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []resume.Resume
	for rows.Next() {
		m, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) Update(ctx context.Context, m resume.Resume) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes
SET title = $2, email = $3, phone = $4, location = $5, linkedin = $6, github = $7, summary = $8, updated_at = $9
WHERE id = $1
`, m.ID, m.Title, m.Email, m.Phone, m.Location, m.LinkedIn, m.GitHub, m.Summary, m.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// LoadAggregate fetches the resume and all child collections inside one
// read-only REPEATABLE READ transaction. Every SELECT sees the same snapshot,
// so an export never mixes collections from before and after a concurrent
// write.
func (r *ResumeRepository) LoadAggregate(ctx context.Context, id uuid.UUID) (resume.Aggregate, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return resume.Aggregate{}, err
	}
	defer tx.Rollback(ctx)

	var agg resume.Aggregate
	row := tx.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	agg.Resume, err = scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Aggregate{}, resume.ErrNotFound
		}
		return resume.Aggregate{}, err
	}

	agg.Experiences, err = queryExperiences(ctx, tx, id)
	if err != nil {
		return resume.Aggregate{}, err
	}
	agg.Projects, err = queryProjects(ctx, tx, id)
	if err != nil {
		return resume.Aggregate{}, err
	}
	agg.Skills, err = querySkills(ctx, tx, id)
	if err != nil {
		return resume.Aggregate{}, err
	}
	agg.Educations, err = queryEducations(ctx, tx, id)
	if err != nil {
		return resume.Aggregate{}, err
	}
	agg.Certifications, err = queryCertifications(ctx, tx, id)
	if err != nil {
		return resume.Aggregate{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return resume.Aggregate{}, err
	}
	return agg, nil
}

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = pgx.Tx(nil)
)

func queryExperiences(ctx context.Context, q querier, resumeID uuid.UUID) ([]resume.Experience, error) {
	rows, err := q.Query(ctx, `
SELECT `+experienceColumns+` FROM experiences
WHERE resume_id = $1 ORDER BY start_date DESC, created_at DESC
`, resumeID)
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

func queryProjects(ctx context.Context, q querier, resumeID uuid.UUID) ([]resume.Project, error) {
	rows, err := q.Query(ctx, `
SELECT `+projectColumns+` FROM projects
WHERE resume_id = $1 ORDER BY created_at ASC
`, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func querySkills(ctx context.Context, q querier, resumeID uuid.UUID) ([]resume.Skill, error) {
	rows, err := q.Query(ctx, `
SELECT `+skillColumns+` FROM skills
WHERE resume_id = $1 ORDER BY "order" ASC, created_at ASC
`, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func queryEducations(ctx context.Context, q querier, resumeID uuid.UUID) ([]resume.Education, error) {
	rows, err := q.Query(ctx, `
SELECT `+educationColumns+` FROM educations
WHERE resume_id = $1 ORDER BY created_at ASC
`, resumeID)
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

func queryCertifications(ctx context.Context, q querier, resumeID uuid.UUID) ([]resume.Certification, error) {
	rows, err := q.Query(ctx, `
SELECT `+certificationColumns+` FROM certifications
WHERE resume_id = $1 ORDER BY date DESC, created_at ASC
`, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
