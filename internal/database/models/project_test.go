package models_test

import (
	"testing"
	"time"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(status models.ProjectStatus, teamSize int) *models.Project {
	return &models.Project{
		Title:           "Search Revamp",
		TeamSize:        teamSize,
		Status:          status,
		CreatedByUserID: "u-owner",
		CreatedByName:   "Olive",
	}
}

func TestProjectStatusString(t *testing.T) {
	testCases := []struct {
		status   models.ProjectStatus
		expected string
	}{
		{models.StatusNotStarted, "Not started"},
		{models.StatusActive, "Active"},
		{models.StatusBlocked, "Blocked"},
		{models.StatusClosed, "Closed"},
		{models.ProjectStatus(9), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestProjectStatusValid(t *testing.T) {
	assert.True(t, models.StatusNotStarted.Valid())
	assert.True(t, models.StatusClosed.Valid())
	assert.False(t, models.ProjectStatus(0).Valid())
	assert.False(t, models.ProjectStatus(5).Valid())
}

func TestProjectJoin(t *testing.T) {
	testCases := []struct {
		name        string
		project     *models.Project
		userID      string
		expectedErr error
	}{
		{
			name:    "Join not-started project",
			project: newProject(models.StatusNotStarted, 2),
			userID:  "u-1",
		},
		{
			name:    "Join active project",
			project: newProject(models.StatusActive, 2),
			userID:  "u-1",
		},
		{
			name:        "Blocked project rejects joins",
			project:     newProject(models.StatusBlocked, 2),
			userID:      "u-1",
			expectedErr: apperrors.ErrProjectNotJoinable,
		},
		{
			name:        "Closed project rejects joins",
			project:     newProject(models.StatusClosed, 2),
			userID:      "u-1",
			expectedErr: apperrors.ErrProjectClosed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.project.Join(tc.userID, "Someone")
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, tc.project.Participants)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.project.Participants.Contains(tc.userID))
		})
	}
}

func TestProjectJoinDuplicate(t *testing.T) {
	p := newProject(models.StatusActive, 3)
	require.NoError(t, p.Join("u-1", "Ann"))

	err := p.Join("u-1", "Ann")

	assert.ErrorIs(t, err, apperrors.ErrDuplicateParticipant)
	assert.Len(t, p.Participants, 1)
}

func TestProjectJoinCapacity(t *testing.T) {
	p := newProject(models.StatusActive, 2)
	require.NoError(t, p.Join("u-1", "Ann"))
	require.NoError(t, p.Join("u-2", "Ben"))

	err := p.Join("u-3", "Cal")

	assert.ErrorIs(t, err, apperrors.ErrTeamCapacityReached)
	assert.Len(t, p.Participants, 2)
}

// A full team still reports the duplicate, not the capacity error, when an
// existing member tries to join again.
func TestProjectJoinDuplicateWinsOverCapacity(t *testing.T) {
	p := newProject(models.StatusActive, 1)
	require.NoError(t, p.Join("u-1", "Ann"))

	err := p.Join("u-1", "Ann")

	assert.ErrorIs(t, err, apperrors.ErrDuplicateParticipant)
}

func TestProjectJoinRemoved(t *testing.T) {
	p := newProject(models.StatusActive, 2)
	p.IsRemoved = true

	assert.ErrorIs(t, p.Join("u-1", "Ann"), apperrors.ErrProjectNotFound)
}

func TestProjectLeave(t *testing.T) {
	p := newProject(models.StatusActive, 3)
	require.NoError(t, p.Join("u-1", "Ann"))
	require.NoError(t, p.Join("u-2", "Ben"))

	require.NoError(t, p.Leave("u-1"))

	assert.False(t, p.Participants.Contains("u-1"))
	assert.True(t, p.Participants.Contains("u-2"))
	assert.Equal(t, models.StatusActive, p.Status, "leaving never changes status")
}

func TestProjectLeaveNotMember(t *testing.T) {
	p := newProject(models.StatusActive, 3)

	assert.ErrorIs(t, p.Leave("u-ghost"), apperrors.ErrNotParticipant)
}

func TestProjectLeaveClosed(t *testing.T) {
	p := newProject(models.StatusClosed, 3)
	p.Participants = models.ParticipantList{{UserID: "u-1", DisplayName: "Ann"}}

	assert.ErrorIs(t, p.Leave("u-1"), apperrors.ErrProjectClosed)
	assert.Len(t, p.Participants, 1)
}

func TestProjectClose(t *testing.T) {
	closedAt := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	p := newProject(models.StatusActive, 2)
	require.NoError(t, p.Close(closedAt))

	assert.Equal(t, models.StatusClosed, p.Status)
	require.NotNil(t, p.ProjectClosedDate)
	assert.Equal(t, closedAt, *p.ProjectClosedDate)
}

func TestProjectCloseRequiresActive(t *testing.T) {
	for _, status := range []models.ProjectStatus{
		models.StatusNotStarted,
		models.StatusBlocked,
		models.StatusClosed,
	} {
		p := newProject(status, 2)
		err := p.Close(time.Now())

		assert.ErrorIs(t, err, apperrors.ErrProjectNotActive, "status %s", status)
		assert.Nil(t, p.ProjectClosedDate)
	}
}

func TestProjectSoftDelete(t *testing.T) {
	p := newProject(models.StatusActive, 2)

	require.NoError(t, p.SoftDelete())
	assert.True(t, p.IsRemoved)

	// Already removed behaves like missing.
	assert.ErrorIs(t, p.SoftDelete(), apperrors.ErrProjectNotFound)
}

func TestProjectSoftDeleteClosed(t *testing.T) {
	p := newProject(models.StatusClosed, 2)

	assert.ErrorIs(t, p.SoftDelete(), apperrors.ErrProjectClosed)
	assert.False(t, p.IsRemoved)
}

func TestProjectEditable(t *testing.T) {
	assert.NoError(t, newProject(models.StatusNotStarted, 2).Editable())
	assert.NoError(t, newProject(models.StatusBlocked, 2).Editable())
	assert.ErrorIs(t, newProject(models.StatusClosed, 2).Editable(), apperrors.ErrProjectClosed)

	removed := newProject(models.StatusActive, 2)
	removed.IsRemoved = true
	assert.ErrorIs(t, removed.Editable(), apperrors.ErrProjectNotFound)
}

func TestProjectIsOwnedBy(t *testing.T) {
	p := newProject(models.StatusActive, 2)

	assert.True(t, p.IsOwnedBy("u-owner"))
	assert.False(t, p.IsOwnedBy("u-other"))
}
