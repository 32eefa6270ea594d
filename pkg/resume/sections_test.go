package resume

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSkillRepo struct {
	skills map[uuid.UUID]Skill
}

func newMemSkillRepo() *memSkillRepo { return &memSkillRepo{skills: make(map[uuid.UUID]Skill)} }

func (m *memSkillRepo) Create(_ context.Context, s Skill) error {
	m.skills[s.ID] = s
	return nil
}

func (m *memSkillRepo) GetByID(_ context.Context, id uuid.UUID) (Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return Skill{}, ErrNotFound
	}
	return s, nil
}

func (m *memSkillRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]Skill, error) {
	var out []Skill
	for _, s := range m.skills {
		if s.ResumeID == resumeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSkillRepo) MaxOrder(_ context.Context, resumeID uuid.UUID) (int, error) {
	max := 0
	for _, s := range m.skills {
		if s.ResumeID == resumeID && s.Order > max {
			max = s.Order
		}
	}
	return max, nil
}

func (m *memSkillRepo) Update(_ context.Context, s Skill) error {
	if _, ok := m.skills[s.ID]; !ok {
		return ErrNotFound
	}
	m.skills[s.ID] = s
	return nil
}

func (m *memSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.skills[id]; !ok {
		return ErrNotFound
	}
	delete(m.skills, id)
	return nil
}

type memExperienceRepo struct {
	items map[uuid.UUID]Experience
}

func newMemExperienceRepo() *memExperienceRepo {
	return &memExperienceRepo{items: make(map[uuid.UUID]Experience)}
}

func (m *memExperienceRepo) Create(_ context.Context, e Experience) error {
	m.items[e.ID] = e
	return nil
}

func (m *memExperienceRepo) GetByID(_ context.Context, id uuid.UUID) (Experience, error) {
	e, ok := m.items[id]
	if !ok {
		return Experience{}, ErrNotFound
	}
	return e, nil
}

func (m *memExperienceRepo) ListByOwner(_ context.Context, _ uuid.UUID) ([]Experience, error) {
	var out []Experience
	for _, e := range m.items {
		out = append(out, e)
	}
	return out, nil
}

func (m *memExperienceRepo) Update(_ context.Context, e Experience) error {
	if _, ok := m.items[e.ID]; !ok {
		return ErrNotFound
	}
	m.items[e.ID] = e
	return nil
}

func (m *memExperienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func TestSkillCreateAssignsNextOrder(t *testing.T) {
	resumes := newMemRepo()
	owner := uuid.New()
	parent := seedResume(t, resumes, owner)
	repo := newMemSkillRepo()
	svc := NewSkillService(repo, resumes)
	ctx := context.Background()

	first, err := svc.Create(ctx, owner, Skill{ResumeID: parent.ID, Category: "Languages", Items: "Go"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)

	second, err := svc.Create(ctx, owner, Skill{ResumeID: parent.ID, Category: "Tools", Items: "Docker"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Order)
}

func TestSkillUpdateKeepsOrder(t *testing.T) {
	resumes := newMemRepo()
	owner := uuid.New()
	parent := seedResume(t, resumes, owner)
	repo := newMemSkillRepo()
	svc := NewSkillService(repo, resumes)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, Skill{ResumeID: parent.ID, Category: "Languages", Items: "Go"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, Skill{ID: created.ID, Category: "Languages", Items: "Go, SQL"})
	require.NoError(t, err)
	assert.Equal(t, created.Order, updated.Order)
	assert.Equal(t, parent.ID, updated.ResumeID)
}

func TestChildOwnershipIsTransitive(t *testing.T) {
	resumes := newMemRepo()
	owner := uuid.New()
	stranger := uuid.New()
	parent := seedResume(t, resumes, owner)
	repo := newMemSkillRepo()
	svc := NewSkillService(repo, resumes)
	ctx := context.Background()

	_, err := svc.Create(ctx, stranger, Skill{ResumeID: parent.ID, Category: "x", Items: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, repo.skills, "forbidden create must not persist anything")

	created, err := svc.Create(ctx, owner, Skill{ResumeID: parent.ID, Category: "x", Items: "y"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, stranger, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = repo.GetByID(ctx, created.ID)
	assert.NoError(t, err, "forbidden delete must not remove the row")

	_, err = svc.Create(ctx, owner, Skill{ResumeID: uuid.New(), Category: "x", Items: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExperienceCurrentlyWorkingClearsEndDate(t *testing.T) {
	resumes := newMemRepo()
	owner := uuid.New()
	parent := seedResume(t, resumes, owner)
	repo := newMemExperienceRepo()
	svc := NewExperienceService(repo, resumes)
	ctx := context.Background()

	end := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, owner, Experience{
		ResumeID:         parent.ID,
		JobTitle:         "Engineer",
		Company:          "ACME",
		StartDate:        time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          &end,
		CurrentlyWorking: true,
	})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate)
}

func TestExperienceUpdatePreservesParent(t *testing.T) {
	resumes := newMemRepo()
	owner := uuid.New()
	parent := seedResume(t, resumes, owner)
	repo := newMemExperienceRepo()
	svc := NewExperienceService(repo, resumes)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, Experience{
		ResumeID:  parent.ID,
		JobTitle:  "Engineer",
		Company:   "ACME",
		StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, Experience{
		ID:        created.ID,
		ResumeID:  uuid.New(), // attempts to reparent are ignored
		JobTitle:  "Senior Engineer",
		Company:   "ACME",
		StartDate: created.StartDate,
	})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, updated.ResumeID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
