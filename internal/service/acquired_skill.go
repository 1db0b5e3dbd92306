package service

import (
	"context"
	"fmt"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/repository"
)

// AcquiredSkillService exposes the skills users collected from closed
// projects.
type AcquiredSkillService struct {
	repo repository.AcquiredSkillStore
}

// NewAcquiredSkillService creates a new acquired skill service
func NewAcquiredSkillService(repo repository.AcquiredSkillStore) *AcquiredSkillService {
	return &AcquiredSkillService{repo: repo}
}

// ListByUser retrieves a user's acquired-skill records, newest first.
func (s *AcquiredSkillService) ListByUser(ctx context.Context, userID string) ([]models.AcquiredSkill, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "user id is required")
	}
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list acquired skills: %w", err)
	}
	return records, nil
}
