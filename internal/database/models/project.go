package models

import (
	"time"

	apperrors "grow-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus int

const (
	StatusNotStarted ProjectStatus = 1
	StatusActive     ProjectStatus = 2
	StatusBlocked    ProjectStatus = 3
	StatusClosed     ProjectStatus = 4
)

// String returns the display name for a status.
func (s ProjectStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusActive:
		return "Active"
	case StatusBlocked:
		return "Blocked"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Valid reports whether the status is one of the known lifecycle states.
func (s ProjectStatus) Valid() bool {
	return s >= StatusNotStarted && s <= StatusClosed
}

// Project is a posted collaboration opportunity with a required skill set,
// a team-size cap and a lifecycle status.
type Project struct {
	ID                uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title             string          `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description       string          `json:"description" gorm:"size:400;not null" validate:"required,min=200,max=400"`
	RequiredSkills    StringList      `json:"required_skills" gorm:"type:text"`
	SupportDocuments  StringList      `json:"support_documents" gorm:"type:text"`
	TeamSize          int             `json:"team_size" gorm:"not null" validate:"required,min=1,max=20"`
	Status            ProjectStatus   `json:"status" gorm:"not null;default:1"`
	Participants      ParticipantList `json:"participants" gorm:"type:text"`
	CreatedByUserID   string          `json:"created_by_user_id" gorm:"size:80;not null;index" validate:"required"`
	CreatedByName     string          `json:"created_by_name" gorm:"size:100"`
	ProjectStartDate  time.Time       `json:"project_start_date"`
	ProjectEndDate    time.Time       `json:"project_end_date"`
	CreatedDate       time.Time       `json:"created_date"`
	UpdatedDate       time.Time       `json:"updated_date"`
	ProjectClosedDate *time.Time      `json:"project_closed_date,omitempty"`
	IsRemoved         bool            `json:"is_removed" gorm:"not null;default:false;index"`

	// Version backs conditional writes; every successful update increments it.
	Version int `json:"-" gorm:"not null;default:0"`
}

// TableName returns the table name for Project.
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate sets the UUID if not already set.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Joinable reports whether the project currently accepts participation changes.
func (p *Project) joinable() error {
	if p.IsRemoved {
		return apperrors.ErrProjectNotFound
	}
	if p.Status == StatusClosed {
		return apperrors.ErrProjectClosed
	}
	return nil
}

// Join appends a participant. It fails when the project is closed or removed,
// when the lifecycle state does not accept members, when the team is at
// capacity, or when the user already joined. Joining does not advance
// UpdatedDate: membership changes are not content edits.
func (p *Project) Join(userID, displayName string) error {
	if err := p.joinable(); err != nil {
		return err
	}
	if p.Status != StatusNotStarted && p.Status != StatusActive {
		return apperrors.ErrProjectNotJoinable
	}
	if p.Participants.Contains(userID) {
		return apperrors.ErrDuplicateParticipant
	}
	if len(p.Participants) >= p.TeamSize {
		return apperrors.ErrTeamCapacityReached
	}
	p.Participants = append(p.Participants, Participant{UserID: userID, DisplayName: displayName})
	return nil
}

// Leave removes a participant. It fails when the project is closed or removed,
// or when the user is not currently a member. Status is unchanged and
// UpdatedDate does not advance.
func (p *Project) Leave(userID string) error {
	if err := p.joinable(); err != nil {
		return err
	}
	if !p.Participants.Contains(userID) {
		return apperrors.ErrNotParticipant
	}
	kept := make(ParticipantList, 0, len(p.Participants)-1)
	for _, member := range p.Participants {
		if member.UserID != userID {
			kept = append(kept, member)
		}
	}
	p.Participants = kept
	return nil
}

// Close transitions Active -> Closed and stamps the closure date. Closing any
// other state is a conflict.
func (p *Project) Close(closedAt time.Time) error {
	if p.IsRemoved {
		return apperrors.ErrProjectNotFound
	}
	if p.Status != StatusActive {
		return apperrors.ErrProjectNotActive
	}
	p.Status = StatusClosed
	p.ProjectClosedDate = &closedAt
	return nil
}

// SoftDelete marks the project removed. Closed projects cannot be deleted.
func (p *Project) SoftDelete() error {
	if p.IsRemoved {
		return apperrors.ErrProjectNotFound
	}
	if p.Status == StatusClosed {
		return apperrors.ErrProjectClosed
	}
	p.IsRemoved = true
	return nil
}

// Editable reports whether the project's content fields may still be changed.
func (p *Project) Editable() error {
	if p.IsRemoved {
		return apperrors.ErrProjectNotFound
	}
	if p.Status == StatusClosed {
		return apperrors.ErrProjectClosed
	}
	return nil
}

// IsOwnedBy reports whether userID created the project.
func (p *Project) IsOwnedBy(userID string) bool {
	return p.CreatedByUserID == userID
}
