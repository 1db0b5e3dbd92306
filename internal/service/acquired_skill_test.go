package service_test

import (
	"context"
	"testing"
	"time"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquiredSkillListByUser(t *testing.T) {
	repo := newFakeAcquiredSkillStore()
	svc := service.NewAcquiredSkillService(repo)
	ctx := context.Background()

	record := &models.AcquiredSkill{
		UserID:            "u-1",
		ProjectID:         uuid.New(),
		AcquiredSkills:    models.StringList{"go"},
		ProjectTitle:      "Search Revamp",
		ProjectClosedDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, record))
	require.NoError(t, repo.Upsert(ctx, &models.AcquiredSkill{UserID: "u-2", ProjectID: uuid.New()}))

	records, err := svc.ListByUser(ctx, "u-1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Search Revamp", records[0].ProjectTitle)
}

func TestAcquiredSkillListByUserEmpty(t *testing.T) {
	svc := service.NewAcquiredSkillService(newFakeAcquiredSkillStore())

	records, err := svc.ListByUser(context.Background(), "u-none")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAcquiredSkillListByUserRequiresUserID(t *testing.T) {
	svc := service.NewAcquiredSkillService(newFakeAcquiredSkillStore())

	_, err := svc.ListByUser(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}
