package service_test

import (
	"context"
	"sync"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeProjectStore is an in-memory ProjectStore with version-checked writes,
// mirroring the conditional-update semantics of the real repository.
type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project

	// conflictsLeft makes the next N UpdateIf calls lose the version race.
	conflictsLeft int
	// failCreate / failUpdate force hard storage errors.
	failCreate error
	failUpdate error

	updateCalls int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[uuid.UUID]models.Project{}}
}

func (f *fakeProjectStore) Create(ctx context.Context, project *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := p
	return &copied, nil
}

func (f *fakeProjectStore) ListAll(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectStore) UpdateIf(ctx context.Context, project *models.Project, expectedVersion int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return apperrors.ErrConcurrentUpdate
	}
	stored, ok := f.projects[project.ID]
	if !ok || stored.Version != expectedVersion {
		return apperrors.ErrConcurrentUpdate
	}
	project.Version = expectedVersion + 1
	f.projects[project.ID] = *project
	return nil
}

// put seeds a project, bypassing lifecycle checks.
func (f *fakeProjectStore) put(p models.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[p.ID] = p
}

// get reads the stored state directly.
func (f *fakeProjectStore) get(id uuid.UUID) models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projects[id]
}

// fakeAcquiredSkillStore is an in-memory AcquiredSkillStore keyed on the
// (user, project) pair.
type fakeAcquiredSkillStore struct {
	mu      sync.Mutex
	records map[string]models.AcquiredSkill

	failUpsert error
	// failAfter, when positive, fails every upsert after that many successes.
	failAfter int
	upserts   int
}

func newFakeAcquiredSkillStore() *fakeAcquiredSkillStore {
	return &fakeAcquiredSkillStore{records: map[string]models.AcquiredSkill{}}
}

func skillKey(userID string, projectID uuid.UUID) string {
	return userID + "/" + projectID.String()
}

func (f *fakeAcquiredSkillStore) Upsert(ctx context.Context, record *models.AcquiredSkill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert != nil {
		return f.failUpsert
	}
	if f.failAfter > 0 && f.upserts >= f.failAfter {
		return gorm.ErrInvalidTransaction
	}
	f.upserts++
	f.records[skillKey(record.UserID, record.ProjectID)] = *record
	return nil
}

func (f *fakeAcquiredSkillStore) ListByUser(ctx context.Context, userID string) ([]models.AcquiredSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.AcquiredSkill{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeTeamSkillsStore is an in-memory TeamSkillsStore.
type fakeTeamSkillsStore struct {
	mu      sync.Mutex
	configs map[string]models.TeamSkills

	failGet error
}

func newFakeTeamSkillsStore() *fakeTeamSkillsStore {
	return &fakeTeamSkillsStore{configs: map[string]models.TeamSkills{}}
}

func (f *fakeTeamSkillsStore) Get(ctx context.Context, teamID string) (*models.TeamSkills, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	c, ok := f.configs[teamID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := c
	return &copied, nil
}

func (f *fakeTeamSkillsStore) Upsert(ctx context.Context, config *models.TeamSkills) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[config.TeamID] = *config
	return nil
}
