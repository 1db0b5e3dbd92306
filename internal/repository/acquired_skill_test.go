//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"grow-backend/internal/database/models"
	"grow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AcquiredSkillRepositoryTestSuite tests the AcquiredSkillRepository
type AcquiredSkillRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AcquiredSkillRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AcquiredSkillRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAcquiredSkillRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AcquiredSkillRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AcquiredSkillRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AcquiredSkillRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AcquiredSkillRepositoryTestSuite) newRecord(userID string, projectID uuid.UUID, closedAt time.Time) *models.AcquiredSkill {
	return &models.AcquiredSkill{
		UserID:            userID,
		ProjectID:         projectID,
		AcquiredSkills:    models.StringList{"go", "teamwork"},
		Feedback:          "Solid contribution",
		ProjectTitle:      "Search Revamp",
		ProjectOwnerName:  "Olive",
		ProjectClosedDate: closedAt,
	}
}

// TestUpsertIsIdempotent verifies a re-run overwrites the same row instead of
// inserting a second one.
func (suite *AcquiredSkillRepositoryTestSuite) TestUpsertIsIdempotent() {
	ctx := context.Background()
	projectID := uuid.New()
	closedAt := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.repo.Upsert(ctx, suite.newRecord("u-1", projectID, closedAt)))

	updated := suite.newRecord("u-1", projectID, closedAt)
	updated.AcquiredSkills = models.StringList{"go", "mentoring"}
	suite.Require().NoError(suite.repo.Upsert(ctx, updated))

	records, err := suite.repo.ListByUser(ctx, "u-1")
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(models.StringList{"go", "mentoring"}, records[0].AcquiredSkills)
}

// TestListByUserOrdersByClosure verifies newest closures come first
func (suite *AcquiredSkillRepositoryTestSuite) TestListByUserOrdersByClosure() {
	ctx := context.Background()
	older := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Microsecond)
	newer := time.Now().UTC().Truncate(time.Microsecond)

	first := suite.newRecord("u-1", uuid.New(), older)
	first.ProjectTitle = "Older"
	suite.Require().NoError(suite.repo.Upsert(ctx, first))

	second := suite.newRecord("u-1", uuid.New(), newer)
	second.ProjectTitle = "Newer"
	suite.Require().NoError(suite.repo.Upsert(ctx, second))

	records, err := suite.repo.ListByUser(ctx, "u-1")
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("Newer", records[0].ProjectTitle)
	suite.Equal("Older", records[1].ProjectTitle)
}

// TestListByUserScopedToUser verifies other users' records stay invisible
func (suite *AcquiredSkillRepositoryTestSuite) TestListByUserScopedToUser() {
	ctx := context.Background()
	closedAt := time.Now().UTC()

	suite.Require().NoError(suite.repo.Upsert(ctx, suite.newRecord("u-1", uuid.New(), closedAt)))
	suite.Require().NoError(suite.repo.Upsert(ctx, suite.newRecord("u-2", uuid.New(), closedAt)))

	records, err := suite.repo.ListByUser(ctx, "u-1")
	suite.Require().NoError(err)
	suite.Len(records, 1)
}

// TestAcquiredSkillRepositoryTestSuite runs the test suite
func TestAcquiredSkillRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AcquiredSkillRepositoryTestSuite))
}
