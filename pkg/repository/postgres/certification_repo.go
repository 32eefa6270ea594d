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

type CertificationRepository struct {
	pool *pgxpool.Pool
}

func NewCertificationRepository(pool *pgxpool.Pool) (*CertificationRepository, error) {
	r := &CertificationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CertificationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS certifications (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	issuer TEXT NOT NULL,
	date DATE NOT NULL,
	link TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_certifications_resume_id ON certifications(resume_id);
`)
	return err
}

const certificationColumns = `id, resume_id, name, issuer, date, link, created_at`

func scanCertification(row pgx.Row) (resume.Certification, error) {
	var c resume.Certification
	var created time.Time
	err := row.Scan(&c.ID, &c.ResumeID, &c.Name, &c.Issuer, &c.Date, &c.Link, &created)
	if err != nil {
		return resume.Certification{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}

func (r *CertificationRepository) Create(ctx context.Context, c resume.Certification) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO certifications (`+certificationColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, c.ID, c.ResumeID, c.Name, c.Issuer, c.Date, c.Link, c.CreatedAt)
	return err
}

func (r *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Certification, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	c, err := scanCertification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Certification{}, resume.ErrNotFound
		}
		return resume.Certification{}, err
	}
	return c, nil
}

func (r *CertificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Certification, error) {
	rows, err := r.pool.Query(ctx, `
SELECT c.id, c.resume_id, c.name, c.issuer, c.date, c.link, c.created_at
FROM certifications c
JOIN resumes r ON r.id = c.resume_id
WHERE r.user_id = $1
ORDER BY c.created_at DESC
`, ownerID)
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

func (r *CertificationRepository) Update(ctx context.Context, c resume.Certification) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE certifications
SET name = $2, issuer = $3, date = $4, link = $5
WHERE id = $1
`, c.ID, c.Name, c.Issuer, c.Date, c.Link)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
