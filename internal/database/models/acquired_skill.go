package models

import (
	"time"

	"github.com/google/uuid"
)

// AcquiredSkill is the per-participant record written when a project closes:
// the skills the participant picked up plus the owner's feedback. One row per
// (user, project) pair; re-closing a project overwrites the same row, which
// makes the close operation safe to retry.
type AcquiredSkill struct {
	UserID            string     `json:"user_id" gorm:"size:80;primaryKey"`
	ProjectID         uuid.UUID  `json:"project_id" gorm:"type:uuid;primaryKey"`
	AcquiredSkills    StringList `json:"acquired_skills" gorm:"type:text"`
	Feedback          string     `json:"feedback" gorm:"size:250"`
	ProjectTitle      string     `json:"project_title" gorm:"size:100"`
	ProjectOwnerName  string     `json:"project_owner_name" gorm:"size:100"`
	ProjectClosedDate time.Time  `json:"project_closed_date"`
}

// TableName returns the table name for AcquiredSkill.
func (AcquiredSkill) TableName() string {
	return "acquired_skills"
}
