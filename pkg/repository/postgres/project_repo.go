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

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) (*ProjectRepository, error) {
	r := &ProjectRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProjectRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS projects (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	technologies TEXT NOT NULL DEFAULT '',
	link TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_resume_id ON projects(resume_id);
`)
	return err
}

const projectColumns = `id, resume_id, name, description, technologies, link, created_at`

func scanProject(row pgx.Row) (resume.Project, error) {
	var p resume.Project
	var created time.Time
	err := row.Scan(&p.ID, &p.ResumeID, &p.Name, &p.Description, &p.Technologies, &p.Link, &created)
	if err != nil {
		return resume.Project{}, err
	}
	p.CreatedAt = created.UTC()
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p resume.Project) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO projects (`+projectColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, p.ID, p.ResumeID, p.Name, p.Description, p.Technologies, p.Link, p.CreatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Project{}, resume.ErrNotFound
		}
		return resume.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id, p.resume_id, p.name, p.description, p.technologies, p.link, p.created_at
FROM projects p
JOIN resumes r ON r.id = p.resume_id
WHERE r.user_id = $1
ORDER BY p.created_at DESC
`, ownerID)
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

func (r *ProjectRepository) Update(ctx context.Context, p resume.Project) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE projects
SET name = $2, description = $3, technologies = $4, link = $5
WHERE id = $1
`, p.ID, p.Name, p.Description, p.Technologies, p.Link)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
