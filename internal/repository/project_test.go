//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) newProject() *models.Project {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Project{
		Title:           "Search Revamp",
		Description:     "Rebuild the project discovery pipeline",
		RequiredSkills:  models.StringList{"go", "postgres"},
		TeamSize:        3,
		Status:          models.StatusNotStarted,
		CreatedByUserID: "u-owner",
		CreatedByName:   "Olive",
		Participants: models.ParticipantList{
			{UserID: "u-1", DisplayName: "Ann"},
		},
		ProjectStartDate: now,
		ProjectEndDate:   now.Add(30 * 24 * time.Hour),
		CreatedDate:      now,
		UpdatedDate:      now,
	}
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.newProject()

	err := suite.repo.Create(context.Background(), project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
}

// TestGetByIDRoundTrip verifies the delimited list columns survive a write and
// read unchanged.
func (suite *ProjectRepositoryTestSuite) TestGetByIDRoundTrip() {
	project := suite.newProject()
	suite.Require().NoError(suite.repo.Create(context.Background(), project))

	got, err := suite.repo.GetByID(context.Background(), project.ID)

	suite.Require().NoError(err)
	suite.Equal(project.Title, got.Title)
	suite.Equal(models.StringList{"go", "postgres"}, got.RequiredSkills)
	suite.Equal(models.ParticipantList{{UserID: "u-1", DisplayName: "Ann"}}, got.Participants)
	suite.Equal(models.StatusNotStarted, got.Status)
}

// TestGetByIDNotFound tests retrieving a missing project
func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListAll includes soft-deleted rows; discovery filters removal itself.
func (suite *ProjectRepositoryTestSuite) TestListAll() {
	active := suite.newProject()
	suite.Require().NoError(suite.repo.Create(context.Background(), active))

	removed := suite.newProject()
	removed.Title = "Removed"
	removed.IsRemoved = true
	suite.Require().NoError(suite.repo.Create(context.Background(), removed))

	projects, err := suite.repo.ListAll(context.Background())

	suite.Require().NoError(err)
	suite.Len(projects, 2)
}

// TestUpdateIf tests the happy-path conditional write
func (suite *ProjectRepositoryTestSuite) TestUpdateIf() {
	project := suite.newProject()
	suite.Require().NoError(suite.repo.Create(context.Background(), project))

	project.Title = "Renamed"
	err := suite.repo.UpdateIf(context.Background(), project, 0)

	suite.Require().NoError(err)
	suite.Equal(1, project.Version)

	got, err := suite.repo.GetByID(context.Background(), project.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", got.Title)
	suite.Equal(1, got.Version)
}

// TestUpdateIfVersionConflict tests that a stale version loses the write
func (suite *ProjectRepositoryTestSuite) TestUpdateIfVersionConflict() {
	project := suite.newProject()
	suite.Require().NoError(suite.repo.Create(context.Background(), project))

	// First writer wins and moves the row to version 1.
	first, err := suite.repo.GetByID(context.Background(), project.ID)
	suite.Require().NoError(err)
	first.Title = "First"
	suite.Require().NoError(suite.repo.UpdateIf(context.Background(), first, first.Version))

	// Second writer still holds version 0 and must lose.
	project.Title = "Second"
	err = suite.repo.UpdateIf(context.Background(), project, 0)
	suite.ErrorIs(err, apperrors.ErrConcurrentUpdate)

	got, err := suite.repo.GetByID(context.Background(), project.ID)
	suite.Require().NoError(err)
	suite.Equal("First", got.Title)
}

// TestUpdateIfPreservesCreationFields verifies the immutable columns stay put
func (suite *ProjectRepositoryTestSuite) TestUpdateIfPreservesCreationFields() {
	project := suite.newProject()
	suite.Require().NoError(suite.repo.Create(context.Background(), project))
	originalCreated := project.CreatedDate

	project.CreatedByUserID = "u-impostor"
	project.Title = "Renamed"
	suite.Require().NoError(suite.repo.UpdateIf(context.Background(), project, 0))

	got, err := suite.repo.GetByID(context.Background(), project.ID)
	suite.Require().NoError(err)
	suite.Equal("u-owner", got.CreatedByUserID)
	suite.WithinDuration(originalCreated, got.CreatedDate, time.Second)
	suite.Equal("Renamed", got.Title)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
