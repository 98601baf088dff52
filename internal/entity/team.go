package entity

import "github.com/gofrs/uuid"

// Team has no scores of its own; its series is always derived from its members.
type Team struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	CompanyID     *uuid.UUID  `json:"company_id,omitempty" db:"company_id"`
	MemberUserIDs []uuid.UUID `json:"member_user_ids" db:"-"`
}

// TeamSummary is a team card: its members and the mean daily score over all their snippets.
type TeamSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MemberCount  int       `json:"member_count"`
	AverageScore float64   `json:"average_score"`
}
