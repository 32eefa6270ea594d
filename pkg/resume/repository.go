package resume

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for the resume root. GetByID returns
// the record regardless of owner so use cases can distinguish 404 from 403.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	// LoadAggregate fetches the resume and all five child collections as one
	// snapshot (single connection, consistent ordering).
	LoadAggregate(ctx context.Context, id uuid.UUID) (Aggregate, error)
}

type ExperienceRepository interface {
	Create(ctx context.Context, e Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Experience, error)
	Update(ctx context.Context, e Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p Project) error
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SkillRepository interface {
	Create(ctx context.Context, s Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]Skill, error)
	// MaxOrder returns the highest order value for a resume, 0 when none.
	MaxOrder(ctx context.Context, resumeID uuid.UUID) (int, error)
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EducationRepository interface {
	Create(ctx context.Context, e Education) error
	GetByID(ctx context.Context, id uuid.UUID) (Education, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Education, error)
	Update(ctx context.Context, e Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CertificationRepository interface {
	Create(ctx context.Context, cert Certification) error
	GetByID(ctx context.Context, id uuid.UUID) (Certification, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Certification, error)
	Update(ctx context.Context, cert Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
