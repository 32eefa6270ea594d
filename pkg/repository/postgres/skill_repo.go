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

// SkillRepository stores skill categories. "order" is quoted everywhere
// because it is a reserved word; it carries no uniqueness constraint.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) (*SkillRepository, error) {
	r := &SkillRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	category TEXT NOT NULL,
	items TEXT NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_skills_resume_id ON skills(resume_id);
`)
	return err
}

const skillColumns = `id, resume_id, category, items, "order", created_at`

func scanSkill(row pgx.Row) (resume.Skill, error) {
	var s resume.Skill
	var created time.Time
	err := row.Scan(&s.ID, &s.ResumeID, &s.Category, &s.Items, &s.Order, &created)
	if err != nil {
		return resume.Skill{}, err
	}
	s.CreatedAt = created.UTC()
	return s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s resume.Skill) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO skills (`+skillColumns+`)
VALUES ($1, $2, $3, $4, $5, $6)
`, s.ID, s.ResumeID, s.Category, s.Items, s.Order, s.CreatedAt)
	return err
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Skill, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Skill{}, resume.ErrNotFound
		}
		return resume.Skill{}, err
	}
	return s, nil
}

func (r *SkillRepository) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]resume.Skill, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+skillColumns+` FROM skills
WHERE resume_id = $1
ORDER BY "order" ASC, created_at ASC
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

func (r *SkillRepository) MaxOrder(ctx context.Context, resumeID uuid.UUID) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(MAX("order"), 0) FROM skills WHERE resume_id = $1
`, resumeID).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *SkillRepository) Update(ctx context.Context, s resume.Skill) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE skills SET category = $2, items = $3 WHERE id = $1
`, s.ID, s.Category, s.Items)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
