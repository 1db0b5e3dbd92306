package handlers

import (
	"net/http"

	"grow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AcquiredSkillHandler handles HTTP requests for acquired skills
type AcquiredSkillHandler struct {
	acquiredSkillService *service.AcquiredSkillService
}

// NewAcquiredSkillHandler creates a new acquired skill handler
func NewAcquiredSkillHandler(acquiredSkillService *service.AcquiredSkillService) *AcquiredSkillHandler {
	return &AcquiredSkillHandler{acquiredSkillService: acquiredSkillService}
}

// ListAcquiredSkills handles GET /users/:userId/acquired-skills
// @Summary List the skills a user collected from closed projects
// @Tags acquired-skills
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.AcquiredSkill "Acquired skill records, newest first"
// @Router /users/{userId}/acquired-skills [get]
func (h *AcquiredSkillHandler) ListAcquiredSkills(c *gin.Context) {
	records, err := h.acquiredSkillService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
