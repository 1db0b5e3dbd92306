package models

import "time"

// TeamSkills is the per-team skill configuration used to pre-filter discovery
// for that team's members. Created on first configuration, upserted after.
type TeamSkills struct {
	TeamID          string     `json:"team_id" gorm:"size:120;primaryKey"`
	Skills          StringList `json:"skills" gorm:"type:text"`
	CreatedByUserID string     `json:"created_by_user_id" gorm:"size:80"`
	UpdatedByUserID string     `json:"updated_by_user_id" gorm:"size:80"`
	CreatedDate     time.Time  `json:"created_date"`
	UpdatedDate     time.Time  `json:"updated_date"`
}

// TableName returns the table name for TeamSkills.
func (TeamSkills) TableName() string {
	return "team_skills"
}
