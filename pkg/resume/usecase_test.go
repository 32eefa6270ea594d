package resume

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository for use-case tests.
type memRepo struct {
	resumes map[uuid.UUID]Resume
	loaded  map[uuid.UUID]Aggregate
}

func newMemRepo() *memRepo {
	return &memRepo{
		resumes: make(map[uuid.UUID]Resume),
		loaded:  make(map[uuid.UUID]Aggregate),
	}
}

func (m *memRepo) Create(_ context.Context, r Resume) error {
	m.resumes[r.ID] = r
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (Resume, error) {
	r, ok := m.resumes[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return r, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	var out []Resume
	for _, r := range m.resumes {
		if r.UserID == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) Update(_ context.Context, r Resume) error {
	if _, ok := m.resumes[r.ID]; !ok {
		return ErrNotFound
	}
	m.resumes[r.ID] = r
	return nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.resumes[id]; !ok {
		return ErrNotFound
	}
	delete(m.resumes, id)
	return nil
}

func (m *memRepo) LoadAggregate(_ context.Context, id uuid.UUID) (Aggregate, error) {
	if agg, ok := m.loaded[id]; ok {
		return agg, nil
	}
	r, ok := m.resumes[id]
	if !ok {
		return Aggregate{}, ErrNotFound
	}
	return Aggregate{Resume: r}, nil
}

func seedResume(t *testing.T, repo *memRepo, ownerID uuid.UUID) Resume {
	t.Helper()
	svc := NewService(repo)
	r, err := svc.Create(context.Background(), Resume{UserID: ownerID, Title: "Backend", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)
	return r
}

func TestResumeGetChecksOwnership(t *testing.T) {
	repo := newMemRepo()
	owner := uuid.New()
	stranger := uuid.New()
	r := seedResume(t, repo, owner)
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), stranger, r.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	agg, err := svc.Get(context.Background(), owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, agg.ID)

	_, err = svc.Get(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeUpdatePreservesOwnerAndCreatedAt(t *testing.T) {
	repo := newMemRepo()
	owner := uuid.New()
	r := seedResume(t, repo, owner)
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), owner, Resume{ID: r.ID, Title: "Platform", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, owner, updated.UserID)
	assert.Equal(t, r.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Platform", updated.Title)
}

func TestResumeForbiddenNeverMutates(t *testing.T) {
	repo := newMemRepo()
	owner := uuid.New()
	stranger := uuid.New()
	r := seedResume(t, repo, owner)
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), stranger, Resume{ID: r.ID, Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), stranger, r.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Title)
}

func TestResumeListScopedToOwner(t *testing.T) {
	repo := newMemRepo()
	owner := uuid.New()
	other := uuid.New()
	seedResume(t, repo, owner)
	seedResume(t, repo, owner)
	seedResume(t, repo, other)
	svc := NewService(repo)

	mine, err := svc.List(context.Background(), owner, 50, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
