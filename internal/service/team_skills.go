package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamSkillsService manages the per-team skill configuration that scopes
// team discovery.
type TeamSkillsService struct {
	repo      repository.TeamSkillsStore
	validator *validator.Validate
}

// NewTeamSkillsService creates a new team skills service
func NewTeamSkillsService(repo repository.TeamSkillsStore, validator *validator.Validate) *TeamSkillsService {
	return &TeamSkillsService{repo: repo, validator: validator}
}

// UpsertTeamSkillsRequest configures a team's skill set.
type UpsertTeamSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=5,max=20,unique,dive,min=1"`
	UserID string   `json:"user_id" validate:"required"`
}

// Get retrieves a team's skill configuration.
func (s *TeamSkillsService) Get(ctx context.Context, teamID string) (*models.TeamSkills, error) {
	if teamID == "" {
		return nil, apperrors.NewValidationError("team_id", "team id is required")
	}
	config, err := s.repo.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamSkillsNotFound
		}
		return nil, fmt.Errorf("failed to get team skills: %w", err)
	}
	return config, nil
}

// Upsert creates the configuration on first write and replaces the skill set
// after, keeping the original creator.
func (s *TeamSkillsService) Upsert(ctx context.Context, teamID string, req *UpsertTeamSkillsRequest) (*models.TeamSkills, error) {
	if teamID == "" {
		return nil, apperrors.NewValidationError("team_id", "team id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	now := time.Now().UTC()
	config := &models.TeamSkills{
		TeamID:          teamID,
		Skills:          req.Skills,
		CreatedByUserID: req.UserID,
		UpdatedByUserID: req.UserID,
		CreatedDate:     now,
		UpdatedDate:     now,
	}
	if existing, err := s.repo.Get(ctx, teamID); err == nil {
		config.CreatedByUserID = existing.CreatedByUserID
		config.CreatedDate = existing.CreatedDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team skills: %w", err)
	}

	if err := s.repo.Upsert(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save team skills: %w", err)
	}
	return config, nil
}
