package handlers

import (
	"net/http"

	"grow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamSkillsHandler handles HTTP requests for team skill configuration
type TeamSkillsHandler struct {
	teamSkillsService *service.TeamSkillsService
}

// NewTeamSkillsHandler creates a new team skills handler
func NewTeamSkillsHandler(teamSkillsService *service.TeamSkillsService) *TeamSkillsHandler {
	return &TeamSkillsHandler{teamSkillsService: teamSkillsService}
}

// GetTeamSkills handles GET /teams/:teamId/skills
// @Summary Get a team's skill configuration
// @Tags team-skills
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} models.TeamSkills "Team skill configuration"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Router /teams/{teamId}/skills [get]
func (h *TeamSkillsHandler) GetTeamSkills(c *gin.Context) {
	config, err := h.teamSkillsService.Get(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpsertTeamSkills handles PUT /teams/:teamId/skills
// @Summary Create or replace a team's skill configuration
// @Tags team-skills
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param skills body service.UpsertTeamSkillsRequest true "Skill configuration"
// @Success 200 {object} models.TeamSkills "Saved configuration"
// @Failure 400 {object} map[string]interface{} "Invalid skill list"
// @Router /teams/{teamId}/skills [put]
func (h *TeamSkillsHandler) UpsertTeamSkills(c *gin.Context) {
	var req service.UpsertTeamSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.teamSkillsService.Upsert(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, config)
}
