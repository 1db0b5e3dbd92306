package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/repository"
	"grow-backend/internal/search"

	"gorm.io/gorm"
)

// topOwnerLimit caps how many owners the owner-name aggregate considers.
const topOwnerLimit = 50

// DiscoveryService composes scope resolution, continuation draining and
// result post-processing into the discovery operations the UI calls.
type DiscoveryService struct {
	index      search.Index
	teamSkills repository.TeamSkillsStore
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(index search.Index, teamSkills repository.TeamSkillsStore) *DiscoveryService {
	return &DiscoveryService{index: index, teamSkills: teamSkills}
}

// DiscoverRequest selects a scope and the filters applied within it.
type DiscoverRequest struct {
	Scope      search.Scope
	SearchText string
	UserID     string
	TeamID     string
	StatusList string // semicolon-delimited status codes from the filter bar
	OwnerList  string // semicolon-delimited owner names from the filter bar
	Page       search.PageCursor
	PageSize   int
}

// DiscoverResult is one caller-facing page plus the infinite-scroll signal.
type DiscoverResult struct {
	Projects []models.Project `json:"projects"`
	HasMore  bool             `json:"has_more"`
}

// Discover runs one discovery query: resolve the scope into a backend
// request, drain all continuation pages, then refine the results in ways the
// backend match could not express.
func (s *DiscoveryService) Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResult, error) {
	if req.Page < 0 {
		return nil, apperrors.NewValidationError("page", "page cursor cannot be negative")
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = search.DefaultPageSize
	}

	// The team-skill scope derives its query from the team's configuration
	// when the caller did not pass explicit skills; the general filter-bar
	// scope uses whatever skills the user selected, possibly none.
	searchText := req.SearchText
	if req.Scope == search.ScopeFilterAsPerTeamSkills && searchText == "" {
		skills, err := s.teamSkillsQuery(ctx, req.TeamID)
		if err != nil {
			return nil, err
		}
		searchText = skills
	}

	request, err := search.BuildRequest(req.Scope, search.Params{
		SearchText: searchText,
		UserID:     req.UserID,
		StatusList: req.StatusList,
		OwnerList:  req.OwnerList,
		Top:        pageSize,
		Skip:       req.Page.Offset(pageSize),
	})
	if err != nil {
		return nil, err
	}

	projects, err := search.DrainAll(ctx, s.index, request)
	if err != nil {
		return nil, fmt.Errorf("discovery query failed: %w", err)
	}
	hasMore := search.HasMorePage(pageSize, len(projects))

	switch req.Scope {
	case search.ScopeJoinedProjects:
		projects = search.FilterByParticipant(projects, req.UserID)
	case search.ScopeFilterAsPerTeamSkills, search.ScopeFilterTeamProjects:
		if searchText != "" {
			projects = search.FilterBySkillIntersection(projects, searchText)
		}
	}

	return &DiscoverResult{Projects: projects, HasMore: hasMore}, nil
}

// UniqueSkills returns the sorted distinct skills across all projects,
// optionally narrowed to skills containing searchText.
func (s *DiscoveryService) UniqueSkills(ctx context.Context, searchText string) ([]string, error) {
	fragment := searchText
	if fragment == "*" {
		fragment = ""
	}
	request, err := search.BuildRequest(search.ScopeUniqueSkills, search.Params{SearchText: fragment})
	if err != nil {
		return nil, err
	}
	projects, err := search.DrainAll(ctx, s.index, request)
	if err != nil {
		return nil, fmt.Errorf("unique skills query failed: %w", err)
	}
	if searchText == "" {
		searchText = "*"
	}
	return search.UniqueSkills(projects, searchText), nil
}

// TopOwnerNames returns the alphabetized display names of the most prolific
// project owners, for the filter bar's owner dropdown.
func (s *DiscoveryService) TopOwnerNames(ctx context.Context) ([]string, error) {
	request, err := search.BuildRequest(search.ScopeUniqueProjectOwnerNames, search.Params{})
	if err != nil {
		return nil, err
	}
	projects, err := search.DrainAll(ctx, s.index, request)
	if err != nil {
		return nil, fmt.Errorf("owner names query failed: %w", err)
	}
	return search.TopOwnerNames(projects, topOwnerLimit), nil
}

// teamSkillsQuery loads a team's configured skills as a semicolon-delimited
// query string.
func (s *DiscoveryService) teamSkillsQuery(ctx context.Context, teamID string) (string, error) {
	if teamID == "" {
		return "", apperrors.NewValidationError("team_id", "team id is required for team-scoped discovery")
	}
	config, err := s.teamSkills.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTeamSkillsNotFound
		}
		return "", fmt.Errorf("failed to load team skills: %w", err)
	}
	return strings.Join(config.Skills, ";"), nil
}
