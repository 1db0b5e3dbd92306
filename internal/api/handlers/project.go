package handlers

import (
	"net/http"

	"grow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project lifecycle operations
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// joinRequest identifies the joining user.
type joinRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
}

// leaveRequest identifies the leaving user.
type leaveRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// closeRequest carries the owner's closing submission.
type closeRequest struct {
	OwnerID             string                        `json:"owner_id" binding:"required"`
	ParticipantFeedback []service.ParticipantFeedback `json:"participant_feedback"`
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Post a collaboration opportunity seeking skilled participants
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Edit a project's content fields
// @Description Only the owner may edit; closed projects are immutable
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param owner_id query string true "Owner user ID"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Project closed or not owned by caller"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Soft-delete a project
// @Description Hides the project from discovery; closed projects cannot be deleted
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param owner_id query string true "Owner user ID"
// @Success 204 "Successfully deleted project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Project closed or not owned by caller"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// JoinProject handles POST /projects/:id/join
// @Summary Join a project's team
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param join body joinRequest true "Joining user"
// @Success 200 {object} models.Project "Joined project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Capacity reached or already joined"
// @Router /projects/{id}/join [post]
func (h *ProjectHandler) JoinProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Join(c.Request.Context(), id, req.UserID, req.UserName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// LeaveProject handles POST /projects/:id/leave
// @Summary Leave a project's team
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param leave body leaveRequest true "Leaving user"
// @Success 200 {object} models.Project "Left project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "User is not a participant"
// @Router /projects/{id}/leave [post]
func (h *ProjectHandler) LeaveProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req leaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Leave(c.Request.Context(), id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CloseProject handles POST /projects/:id/close
// @Summary Close an active project
// @Description Freezes membership and records acquired skills per participant. Safe to retry after partial failure.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param close body closeRequest true "Closing submission"
// @Success 200 {object} models.Project "Closed project"
// @Failure 400 {object} map[string]interface{} "Missing participant feedback"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Project is not active or not owned by caller"
// @Router /projects/{id}/close [post]
func (h *ProjectHandler) CloseProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Close(c.Request.Context(), id, req.OwnerID, req.ParticipantFeedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
