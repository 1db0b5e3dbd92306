package repository

import (
	"context"

	"grow-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectStore is the record-store contract for projects. UpdateIf is the
// conditional write backing the join/leave/close capacity invariants.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	UpdateIf(ctx context.Context, project *models.Project, expectedVersion int) error
}

// AcquiredSkillStore is the record-store contract for acquired-skill records.
type AcquiredSkillStore interface {
	Upsert(ctx context.Context, record *models.AcquiredSkill) error
	ListByUser(ctx context.Context, userID string) ([]models.AcquiredSkill, error)
}

// TeamSkillsStore is the record-store contract for team skill configurations.
type TeamSkillsStore interface {
	Get(ctx context.Context, teamID string) (*models.TeamSkills, error)
	Upsert(ctx context.Context, config *models.TeamSkills) error
}
