package repository

import (
	"context"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListAll retrieves every project, including soft-deleted ones; discovery
// scopes filter removal themselves.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateIf writes the project only when the stored row still carries
// expectedVersion, incrementing the version on success. A zero-row update
// means another writer got there first and is reported as
// ErrConcurrentUpdate.
func (r *ProjectRepository) UpdateIf(ctx context.Context, project *models.Project, expectedVersion int) error {
	project.Version = expectedVersion + 1
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND version = ?", project.ID, expectedVersion).
		Select("*").
		Omit("id", "created_date", "created_by_user_id").
		Updates(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrentUpdate
	}
	return nil
}
