package handlers

import (
	"net/http"
	"strconv"

	"grow-backend/internal/search"
	"grow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DiscoveryHandler handles HTTP requests for project discovery
type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// Discover handles GET /discover
// @Summary Discover projects
// @Description Run a scoped discovery query with optional free text, status, owner and skill filters
// @Tags discovery
// @Produce json
// @Param scope query string true "Discovery scope" Enums(allProjects, createdProjectsByUser, joinedProjects, filterAsPerTeamSkills, searchProjects, filterTeamProjects)
// @Param q query string false "Free text or semicolon-delimited skill list"
// @Param user_id query string false "Requesting user ID (required for user scopes)"
// @Param team_id query string false "Team ID (required for team-skill scope)"
// @Param status query string false "Semicolon-delimited status codes, e.g. 1;2"
// @Param owners query string false "Semicolon-delimited owner display names"
// @Param page query int false "Zero-based page cursor for infinite scroll"
// @Param page_size query int false "Page size (default 50)"
// @Success 200 {object} service.DiscoverResult "Matched projects"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Team skill configuration not found"
// @Router /discover [get]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
		return
	}
	scope := search.Scope(c.Query("scope"))
	if !search.KnownScope(scope) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown scope"})
		return
	}

	result, err := h.discoveryService.Discover(c.Request.Context(), service.DiscoverRequest{
		Scope:      scope,
		SearchText: c.Query("q"),
		UserID:     c.Query("user_id"),
		TeamID:     c.Query("team_id"),
		StatusList: c.Query("status"),
		OwnerList:  c.Query("owners"),
		Page:       search.PageCursor(page),
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UniqueSkills handles GET /skills
// @Summary List distinct skills across projects
// @Tags discovery
// @Produce json
// @Param q query string false "Substring filter; * or empty for all skills"
// @Success 200 {array} string "Sorted distinct skill list"
// @Router /skills [get]
func (h *DiscoveryHandler) UniqueSkills(c *gin.Context) {
	skills, err := h.discoveryService.UniqueSkills(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// TopOwnerNames handles GET /owners
// @Summary List the most prolific project owners
// @Tags discovery
// @Produce json
// @Success 200 {array} string "Alphabetized owner display names"
// @Router /owners [get]
func (h *DiscoveryHandler) TopOwnerNames(c *gin.Context) {
	names, err := h.discoveryService.TopOwnerNames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}
