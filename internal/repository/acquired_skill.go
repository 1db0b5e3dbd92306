package repository

import (
	"context"

	"grow-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AcquiredSkillRepository handles database operations for acquired skills
type AcquiredSkillRepository struct {
	db *gorm.DB
}

// NewAcquiredSkillRepository creates a new acquired skill repository
func NewAcquiredSkillRepository(db *gorm.DB) *AcquiredSkillRepository {
	return &AcquiredSkillRepository{db: db}
}

// Upsert writes an acquired-skill record keyed on (user, project),
// overwriting any existing row. Re-running a close operation therefore never
// duplicates records.
func (r *AcquiredSkillRepository) Upsert(ctx context.Context, record *models.AcquiredSkill) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			UpdateAll: true,
		}).
		Create(record).Error
}

// ListByUser retrieves all acquired-skill records for a user, newest closure
// first.
func (r *AcquiredSkillRepository) ListByUser(ctx context.Context, userID string) ([]models.AcquiredSkill, error) {
	var records []models.AcquiredSkill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("project_closed_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
