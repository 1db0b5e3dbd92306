package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
	"grow-backend/internal/logger"
	"grow-backend/internal/repository"
	"grow-backend/internal/search"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateRetries bounds how often a join/leave re-reads and re-attempts its
// conditional write after losing a version race.
const updateRetries = 3

// ProjectService handles the project lifecycle: creation, edits, membership
// changes and closure.
type ProjectService struct {
	projects  repository.ProjectStore
	skills    repository.AcquiredSkillStore
	index     search.Index
	validator *validator.Validate
	log       *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectStore, skills repository.AcquiredSkillStore, index search.Index, validator *validator.Validate, log *logger.Logger) *ProjectService {
	return &ProjectService{
		projects:  projects,
		skills:    skills,
		index:     index,
		validator: validator,
		log:       log,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title            string    `json:"title" validate:"required,min=1,max=100"`
	Description      string    `json:"description" validate:"required,min=200,max=400"`
	RequiredSkills   []string  `json:"required_skills" validate:"required,min=2,max=5,unique,dive,min=1"`
	SupportDocuments []string  `json:"support_documents" validate:"max=3,dive,url"`
	TeamSize         int       `json:"team_size" validate:"required,min=1,max=20"`
	ProjectStartDate time.Time `json:"project_start_date" validate:"required"`
	ProjectEndDate   time.Time `json:"project_end_date" validate:"required"`
	CreatedByUserID  string    `json:"created_by_user_id" validate:"required"`
	CreatedByName    string    `json:"created_by_name" validate:"required"`
}

// UpdateProjectRequest represents the request to edit a project's content
// fields. Membership is changed through Join/Leave, never here.
type UpdateProjectRequest struct {
	Title            string                `json:"title" validate:"required,min=1,max=100"`
	Description      string                `json:"description" validate:"required,min=200,max=400"`
	RequiredSkills   []string              `json:"required_skills" validate:"required,min=2,max=5,unique,dive,min=1"`
	SupportDocuments []string              `json:"support_documents" validate:"max=3,dive,url"`
	TeamSize         int                   `json:"team_size" validate:"required,min=1,max=20"`
	Status           *models.ProjectStatus `json:"status,omitempty"`
	ProjectStartDate time.Time             `json:"project_start_date" validate:"required"`
	ProjectEndDate   time.Time             `json:"project_end_date" validate:"required"`
}

// ParticipantFeedback is the owner's closing submission for one participant.
type ParticipantFeedback struct {
	UserID         string   `json:"user_id" validate:"required"`
	AcquiredSkills []string `json:"acquired_skills" validate:"required,min=1,max=5"`
	Feedback       string   `json:"feedback" validate:"max=250"`
}

// Create creates a new project owned by the requesting user.
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}
	if err := validateDates(req.ProjectStartDate, req.ProjectEndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &models.Project{
		Title:            req.Title,
		Description:      req.Description,
		RequiredSkills:   req.RequiredSkills,
		SupportDocuments: req.SupportDocuments,
		TeamSize:         req.TeamSize,
		Status:           models.StatusNotStarted,
		CreatedByUserID:  req.CreatedByUserID,
		CreatedByName:    req.CreatedByName,
		ProjectStartDate: req.ProjectStartDate,
		ProjectEndDate:   req.ProjectEndDate,
		CreatedDate:      now,
		UpdatedDate:      now,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.refreshIndex(ctx)
	return project, nil
}

// GetByID retrieves a project. Soft-deleted projects report as not found.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.getProject(ctx, id)
}

// Update edits a project's content fields and advances UpdatedDate. Only the
// owner may edit; closed projects are immutable.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, ownerID string, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}
	if err := validateDates(req.ProjectStartDate, req.ProjectEndDate); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "unknown status code")
	}

	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsOwnedBy(ownerID) {
		return nil, apperrors.ErrNotProjectOwner
	}
	if err := project.Editable(); err != nil {
		return nil, err
	}
	if req.TeamSize < len(project.Participants) {
		return nil, apperrors.NewValidationError("team_size", "team size cannot drop below the current participant count")
	}

	project.Title = req.Title
	project.Description = req.Description
	project.RequiredSkills = req.RequiredSkills
	project.SupportDocuments = req.SupportDocuments
	project.TeamSize = req.TeamSize
	project.ProjectStartDate = req.ProjectStartDate
	project.ProjectEndDate = req.ProjectEndDate
	if req.Status != nil && *req.Status != models.StatusClosed {
		project.Status = *req.Status
	}
	project.UpdatedDate = time.Now().UTC()

	if err := s.projects.UpdateIf(ctx, project, project.Version); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.refreshIndex(ctx)
	return project, nil
}

// Join adds a user to a project's team. Capacity and duplicate checks are
// revalidated after every lost write race, so concurrent joins can never push
// the team past its size cap.
func (s *ProjectService) Join(ctx context.Context, id uuid.UUID, userID, userName string) (*models.Project, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "user id is required")
	}
	return s.withRetry(ctx, id, func(p *models.Project) error {
		return p.Join(userID, userName)
	})
}

// Leave removes a user from a project's team.
func (s *ProjectService) Leave(ctx context.Context, id uuid.UUID, userID string) (*models.Project, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "user id is required")
	}
	return s.withRetry(ctx, id, func(p *models.Project) error {
		return p.Leave(userID)
	})
}

// Close transitions an active project to Closed, stamping the closure date
// and writing one acquired-skill record per participant.
//
// The skill upserts and the status update are not transactional. A failure in
// between leaves the project Active with some records already written;
// retrying Close is safe because the records are keyed on (user, project) and
// simply overwrite.
func (s *ProjectService) Close(ctx context.Context, id uuid.UUID, ownerID string, feedback []ParticipantFeedback) (*models.Project, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsOwnedBy(ownerID) {
		return nil, apperrors.ErrNotProjectOwner
	}
	if project.Status != models.StatusActive {
		return nil, apperrors.ErrProjectNotActive
	}

	byUser := map[string]ParticipantFeedback{}
	for i := range feedback {
		if err := s.validator.Struct(&feedback[i]); err != nil {
			return nil, asValidationError(err)
		}
		byUser[feedback[i].UserID] = feedback[i]
	}
	for _, member := range project.Participants {
		if _, ok := byUser[member.UserID]; !ok {
			return nil, apperrors.ErrMissingFeedback
		}
	}

	closedAt := time.Now().UTC()
	for _, member := range project.Participants {
		fb := byUser[member.UserID]
		record := &models.AcquiredSkill{
			UserID:            member.UserID,
			ProjectID:         project.ID,
			AcquiredSkills:    fb.AcquiredSkills,
			Feedback:          fb.Feedback,
			ProjectTitle:      project.Title,
			ProjectOwnerName:  project.CreatedByName,
			ProjectClosedDate: closedAt,
		}
		if err := s.skills.Upsert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record acquired skills for %s: %w", member.UserID, err)
		}
	}

	if err := project.Close(closedAt); err != nil {
		return nil, err
	}
	if err := s.projects.UpdateIf(ctx, project, project.Version); err != nil {
		return nil, fmt.Errorf("failed to close project: %w", err)
	}

	s.refreshIndex(ctx)
	return project, nil
}

// Delete soft-deletes a project, hiding it from every discovery scope. Closed
// projects cannot be deleted.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return err
	}
	if !project.IsOwnedBy(ownerID) {
		return apperrors.ErrNotProjectOwner
	}
	if err := project.SoftDelete(); err != nil {
		return err
	}
	if err := s.projects.UpdateIf(ctx, project, project.Version); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.refreshIndex(ctx)
	return nil
}

// withRetry runs a membership mutation with read-validate-write semantics,
// retrying a bounded number of times when the conditional write loses a race.
func (s *ProjectService) withRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Project) error) (*models.Project, error) {
	var lastErr error
	for attempt := 0; attempt < updateRetries; attempt++ {
		project, err := s.getProject(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(project); err != nil {
			return nil, err
		}
		err = s.projects.UpdateIf(ctx, project, project.Version)
		if err == nil {
			s.refreshIndex(ctx)
			return project, nil
		}
		if !errors.Is(err, apperrors.ErrConcurrentUpdate) {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("gave up after %d attempts: %w", updateRetries, lastErr)
}

func (s *ProjectService) getProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.IsRemoved {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

// refreshIndex asks the search service to re-index after a write. Failures
// are logged and never fail the write that triggered them.
func (s *ProjectService) refreshIndex(ctx context.Context) {
	if err := s.index.RunIndexer(ctx); err != nil {
		s.log.WithError(err).Warn("search indexer refresh failed")
	}
}

func validateDates(start, end time.Time) error {
	if end.Before(start) {
		return apperrors.NewValidationError("project_end_date", "end date must not be before the start date")
	}
	if end.Before(time.Now().UTC()) {
		return apperrors.NewValidationError("project_end_date", "end date must not be in the past")
	}
	return nil
}
