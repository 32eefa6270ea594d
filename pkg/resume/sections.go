package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ownerGate resolves whether a resume belongs to the acting user. Ownership
// of child records is always checked transitively through the parent; it is
// never duplicated onto the child rows.
type ownerGate struct {
	resumes Repository
}

func (g ownerGate) check(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	r, err := g.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return err
	}
	if r.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}

// ExperienceUseCase manages experience entries under a resume.
type ExperienceUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Experience, error)
	Create(ctx context.Context, ownerID uuid.UUID, e Experience) (Experience, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Experience, error)
	Update(ctx context.Context, ownerID uuid.UUID, e Experience) (Experience, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type experienceService struct {
	repo ExperienceRepository
	gate ownerGate
}

func NewExperienceService(repo ExperienceRepository, resumes Repository) ExperienceUseCase {
	return &experienceService{repo: repo, gate: ownerGate{resumes: resumes}}
}

func (s *experienceService) List(ctx context.Context, ownerID uuid.UUID) ([]Experience, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *experienceService) Create(ctx context.Context, ownerID uuid.UUID, e Experience) (Experience, error) {
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return Experience{}, err
	}
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	if e.CurrentlyWorking {
		e.EndDate = nil
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (s *experienceService) Get(ctx context.Context, ownerID, id uuid.UUID) (Experience, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Experience{}, err
	}
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (s *experienceService) Update(ctx context.Context, ownerID uuid.UUID, e Experience) (Experience, error) {
	existing, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return Experience{}, err
	}
	if err := s.gate.check(ctx, ownerID, existing.ResumeID); err != nil {
		return Experience{}, err
	}
	e.ResumeID = existing.ResumeID
	e.CreatedAt = existing.CreatedAt
	if e.CurrentlyWorking {
		e.EndDate = nil
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (s *experienceService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ProjectUseCase manages project entries under a resume.
type ProjectUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Project, error)
	Create(ctx context.Context, ownerID uuid.UUID, p Project) (Project, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Project, error)
	Update(ctx context.Context, ownerID uuid.UUID, p Project) (Project, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type projectService struct {
	repo ProjectRepository
	gate ownerGate
}

func NewProjectService(repo ProjectRepository, resumes Repository) ProjectUseCase {
	return &projectService{repo: repo, gate: ownerGate{resumes: resumes}}
}

func (s *projectService) List(ctx context.Context, ownerID uuid.UUID) ([]Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *projectService) Create(ctx context.Context, ownerID uuid.UUID, p Project) (Project, error) {
	if err := s.gate.check(ctx, ownerID, p.ResumeID); err != nil {
		return Project{}, err
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, ownerID, id uuid.UUID) (Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if err := s.gate.check(ctx, ownerID, p.ResumeID); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, ownerID uuid.UUID, p Project) (Project, error) {
	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return Project{}, err
	}
	if err := s.gate.check(ctx, ownerID, existing.ResumeID); err != nil {
		return Project{}, err
	}
	p.ResumeID = existing.ResumeID
	p.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.check(ctx, ownerID, p.ResumeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SkillUseCase manages skill categories. Create assigns the next order
// value: 1 + max(existing orders), or 1 when the resume has none yet.
type SkillUseCase interface {
	List(ctx context.Context, ownerID, resumeID uuid.UUID) ([]Skill, error)
	Create(ctx context.Context, ownerID uuid.UUID, sk Skill) (Skill, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Skill, error)
	Update(ctx context.Context, ownerID uuid.UUID, sk Skill) (Skill, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type skillService struct {
	repo SkillRepository
	gate ownerGate
}

func NewSkillService(repo SkillRepository, resumes Repository) SkillUseCase {
	return &skillService{repo: repo, gate: ownerGate{resumes: resumes}}
}

func (s *skillService) List(ctx context.Context, ownerID, resumeID uuid.UUID) ([]Skill, error) {
	if err := s.gate.check(ctx, ownerID, resumeID); err != nil {
		return nil, err
	}
	return s.repo.ListByResume(ctx, resumeID)
}

func (s *skillService) Create(ctx context.Context, ownerID uuid.UUID, sk Skill) (Skill, error) {
	if err := s.gate.check(ctx, ownerID, sk.ResumeID); err != nil {
		return Skill{}, err
	}
	maxOrder, err := s.repo.MaxOrder(ctx, sk.ResumeID)
	if err != nil {
		return Skill{}, err
	}
	sk.ID = uuid.New()
	sk.Order = maxOrder + 1
	sk.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, sk); err != nil {
		return Skill{}, err
	}
	return sk, nil
}

func (s *skillService) Get(ctx context.Context, ownerID, id uuid.UUID) (Skill, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Skill{}, err
	}
	if err := s.gate.check(ctx, ownerID, sk.ResumeID); err != nil {
		return Skill{}, err
	}
	return sk, nil
}

func (s *skillService) Update(ctx context.Context, ownerID uuid.UUID, sk Skill) (Skill, error) {
	existing, err := s.repo.GetByID(ctx, sk.ID)
	if err != nil {
		return Skill{}, err
	}
	if err := s.gate.check(ctx, ownerID, existing.ResumeID); err != nil {
		return Skill{}, err
	}
	// Order is assigned on create and kept stable across updates.
	sk.ResumeID = existing.ResumeID
	sk.Order = existing.Order
	sk.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, sk); err != nil {
		return Skill{}, err
	}
	return sk, nil
}

func (s *skillService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.check(ctx, ownerID, sk.ResumeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// EducationUseCase manages education entries under a resume.
type EducationUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Education, error)
	Create(ctx context.Context, ownerID uuid.UUID, e Education) (Education, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Education, error)
	Update(ctx context.Context, ownerID uuid.UUID, e Education) (Education, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type educationService struct {
	repo EducationRepository
	gate ownerGate
}

func NewEducationService(repo EducationRepository, resumes Repository) EducationUseCase {
	return &educationService{repo: repo, gate: ownerGate{resumes: resumes}}
}

func (s *educationService) List(ctx context.Context, ownerID uuid.UUID) ([]Education, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *educationService) Create(ctx context.Context, ownerID uuid.UUID, e Education) (Education, error) {
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return Education{}, err
	}
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, e); err != nil {
		return Education{}, err
	}
	return e, nil
}

func (s *educationService) Get(ctx context.Context, ownerID, id uuid.UUID) (Education, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Education{}, err
	}
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return Education{}, err
	}
	return e, nil
}

func (s *educationService) Update(ctx context.Context, ownerID uuid.UUID, e Education) (Education, error) {
	existing, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return Education{}, err
	}
	if err := s.gate.check(ctx, ownerID, existing.ResumeID); err != nil {
		return Education{}, err
	}
	e.ResumeID = existing.ResumeID
	e.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, e); err != nil {
		return Education{}, err
	}
	return e, nil
}

func (s *educationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.check(ctx, ownerID, e.ResumeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// CertificationUseCase manages certification entries under a resume.
type CertificationUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Certification, error)
	Create(ctx context.Context, ownerID uuid.UUID, cert Certification) (Certification, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Certification, error)
	Update(ctx context.Context, ownerID uuid.UUID, cert Certification) (Certification, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type certificationService struct {
	repo CertificationRepository
	gate ownerGate
}

func NewCertificationService(repo CertificationRepository, resumes Repository) CertificationUseCase {
	return &certificationService{repo: repo, gate: ownerGate{resumes: resumes}}
}

func (s *certificationService) List(ctx context.Context, ownerID uuid.UUID) ([]Certification, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *certificationService) Create(ctx context.Context, ownerID uuid.UUID, cert Certification) (Certification, error) {
	if err := s.gate.check(ctx, ownerID, cert.ResumeID); err != nil {
		return Certification{}, err
	}
	cert.ID = uuid.New()
	cert.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, cert); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

func (s *certificationService) Get(ctx context.Context, ownerID, id uuid.UUID) (Certification, error) {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Certification{}, err
	}
	if err := s.gate.check(ctx, ownerID, cert.ResumeID); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

func (s *certificationService) Update(ctx context.Context, ownerID uuid.UUID, cert Certification) (Certification, error) {
	existing, err := s.repo.GetByID(ctx, cert.ID)
	if err != nil {
		return Certification{}, err
	}
	if err := s.gate.check(ctx, ownerID, existing.ResumeID); err != nil {
		return Certification{}, err
	}
	cert.ResumeID = existing.ResumeID
	cert.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, cert); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

func (s *certificationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.check(ctx, ownerID, cert.ResumeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
