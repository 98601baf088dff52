package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type Skill struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"skill_name" db:"skill_name"`
	CompanyID uuid.UUID `json:"company_id" db:"company_id"`
}

type SkillRating struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	SkillID   uuid.UUID `json:"skill_id" db:"skill_id"`
	Score     float64   `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SkillScore is one axis of the PDP radar.
type SkillScore struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Score     float64   `json:"score"`
}

// SkillMatrixRow summarizes one skill across all company users.
type SkillMatrixRow struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Total     float64   `json:"total"`
	Average   float64   `json:"average"`
	Rated     int       `json:"rated"`
}
