package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase describes resume aggregate management for one acting owner.
// Every method takes the acting user id and refuses foreign resumes with
// ErrForbidden; a missing id is ErrNotFound.
type UseCase interface {
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	Create(ctx context.Context, r Resume) (Resume, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Aggregate, error)
	Update(ctx context.Context, ownerID uuid.UUID, r Resume) (Resume, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService returns the default implementation of UseCase.
func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Create(ctx context.Context, r Resume) (Resume, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.repo.Create(ctx, r); err != nil {
		return Resume{}, err
	}
	return r, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Aggregate, error) {
	if err := s.authorize(ctx, ownerID, id); err != nil {
		return Aggregate{}, err
	}
	return s.repo.LoadAggregate(ctx, id)
}

func (s *service) Update(ctx context.Context, ownerID uuid.UUID, r Resume) (Resume, error) {
	existing, err := s.repo.GetByID(ctx, r.ID)
	if err != nil {
		return Resume{}, err
	}
	if existing.UserID != ownerID {
		return Resume{}, ErrForbidden
	}
	r.UserID = existing.UserID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, r); err != nil {
		return Resume{}, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) authorize(ctx context.Context, ownerID, id uuid.UUID) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
