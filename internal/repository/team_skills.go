package repository

import (
	"context"

	"grow-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamSkillsRepository handles database operations for team skill configurations
type TeamSkillsRepository struct {
	db *gorm.DB
}

// NewTeamSkillsRepository creates a new team skills repository
func NewTeamSkillsRepository(db *gorm.DB) *TeamSkillsRepository {
	return &TeamSkillsRepository{db: db}
}

// Get retrieves the skill configuration for a team
func (r *TeamSkillsRepository) Get(ctx context.Context, teamID string) (*models.TeamSkills, error) {
	var config models.TeamSkills
	err := r.db.WithContext(ctx).First(&config, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert creates the configuration on first write and overwrites it after
func (r *TeamSkillsRepository) Upsert(ctx context.Context, config *models.TeamSkills) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			UpdateAll: true,
		}).
		Create(config).Error
}
