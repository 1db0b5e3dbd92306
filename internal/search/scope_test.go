package search_test

import (
	"testing"

	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownScope(t *testing.T) {
	for _, s := range []search.Scope{
		search.ScopeAllProjects,
		search.ScopeCreatedProjectsByUser,
		search.ScopeJoinedProjects,
		search.ScopeUniqueSkills,
		search.ScopeFilterAsPerTeamSkills,
		search.ScopeUniqueProjectOwnerNames,
		search.ScopeSearchProjects,
		search.ScopeFilterTeamProjects,
	} {
		assert.True(t, search.KnownScope(s), "scope %q", s)
	}

	assert.False(t, search.KnownScope(search.Scope("bogus")))
	assert.False(t, search.KnownScope(search.Scope("")))
}

func TestBuildRequestUnknownScope(t *testing.T) {
	_, err := search.BuildRequest(search.Scope("bogus"), search.Params{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownScope)
	assert.Contains(t, err.Error(), "bogus")
}

func TestBuildRequestAllProjects(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeAllProjects, search.Params{SearchText: "mobile"})

	require.NoError(t, err)
	assert.Equal(t, "mobile", req.QueryText)
	assert.Equal(t, "IsRemoved eq false", req.Filter)
	assert.Empty(t, req.SearchFields)
	assert.Equal(t, []string{"CreatedDate desc"}, req.OrderBy)
	assert.Equal(t, search.DefaultPageSize, req.Top)
	assert.Equal(t, search.QueryTypeSimple, req.QueryType)
}

func TestBuildRequestAllProjectsEmptyTextMatchesAll(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeAllProjects, search.Params{})

	require.NoError(t, err)
	assert.Equal(t, "*", req.QueryText)
}

func TestBuildRequestCreatedProjectsByUser(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeCreatedProjectsByUser, search.Params{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, "*", req.QueryText)
	assert.Equal(t, `CreatedByUserId eq 'user\-1' and IsRemoved eq false`, req.Filter)
}

func TestBuildRequestJoinedProjects(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeJoinedProjects, search.Params{UserID: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", req.QueryText)
	assert.Equal(t, []string{"ProjectParticipantsUserIds"}, req.SearchFields)
	assert.Equal(t, "IsRemoved eq false", req.Filter)
}

func TestBuildRequestUniqueSkillsOverridesTop(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeUniqueSkills, search.Params{SearchText: "go", Top: 10})

	require.NoError(t, err)
	assert.Equal(t, "go", req.QueryText)
	assert.Equal(t, []string{"RequiredSkills"}, req.SearchFields)
	assert.Equal(t, []string{"RequiredSkills"}, req.Select)
	assert.Equal(t, 5000, req.Top, "aggregate scopes fetch effectively everything")
	assert.Empty(t, req.OrderBy)
}

func TestBuildRequestFilterAsPerTeamSkills(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeFilterAsPerTeamSkills, search.Params{SearchText: "go;rust;"})

	require.NoError(t, err)
	assert.Equal(t, "go rust", req.QueryText)
	assert.Equal(t, []string{"RequiredSkills"}, req.SearchFields)
	assert.Equal(t, []string{"UpdatedDate desc"}, req.OrderBy)
}

func TestBuildRequestUniqueProjectOwnerNames(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeUniqueProjectOwnerNames, search.Params{})

	require.NoError(t, err)
	assert.Equal(t, "*", req.QueryText)
	assert.Equal(t, []string{"CreatedByUserId", "CreatedByName"}, req.Select)
	assert.Equal(t, 5000, req.Top)
}

func TestBuildRequestSearchProjects(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeSearchProjects, search.Params{
		SearchText: "chat-bot",
		StatusList: "1;2;",
		OwnerList:  "Amy",
	})

	require.NoError(t, err)
	assert.Equal(t, `chat\-bot`, req.QueryText)
	assert.Equal(t,
		"IsRemoved eq false and ((Status eq 1 or Status eq 2) and (CreatedByName eq 'Amy'))",
		req.Filter)
	assert.Equal(t, []string{"Title", "Description", "RequiredSkills"}, req.SearchFields)
	assert.Equal(t, search.QueryTypeFull, req.QueryType)
}

func TestBuildRequestSearchProjectsNoFilterBar(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeSearchProjects, search.Params{SearchText: "x"})

	require.NoError(t, err)
	assert.Equal(t, "IsRemoved eq false", req.Filter)
}

func TestBuildRequestFilterTeamProjects(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeFilterTeamProjects, search.Params{
		SearchText: "go;python",
		StatusList: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, "go python", req.QueryText)
	assert.Equal(t, "IsRemoved eq false and ((Status eq 2))", req.Filter)
	assert.Equal(t, search.QueryTypeSimple, req.QueryType)
}

func TestBuildRequestPaging(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeAllProjects, search.Params{Top: 25, Skip: 50})

	require.NoError(t, err)
	assert.Equal(t, 25, req.Top)
	assert.Equal(t, 50, req.Skip)
}

func TestBuildRequestDefaultsTopWhenUnset(t *testing.T) {
	req, err := search.BuildRequest(search.ScopeAllProjects, search.Params{})

	require.NoError(t, err)
	assert.Equal(t, search.DefaultPageSize, req.Top)
}
