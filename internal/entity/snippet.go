package entity

import (
	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// Snippet is a scored journal entry. Only approved snippets (score present) reach analytics.
type Snippet struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	OwnerID    uuid.UUID      `json:"owner_id" db:"owner_id"`
	Date       Date           `json:"date" db:"snippet_date"`
	Score      float64        `json:"score" db:"score"`
	Green      pq.StringArray `json:"green" db:"green"`
	Orange     pq.StringArray `json:"orange" db:"orange"`
	Red        pq.StringArray `json:"red" db:"red"`
	Text       string         `json:"text" db:"text"`
	ActionText *string        `json:"action_text,omitempty" db:"action_text"`
}

func (s Snippet) Day() Date           { return s.Date }
func (s Snippet) ScoreValue() float64 { return s.Score }

// MemberSnippets is the fetched snapshot of one user's snippets.
type MemberSnippets struct {
	UserID   uuid.UUID `json:"user_id"`
	Snippets []Snippet `json:"snippets"`
}

// OverviewRow is one line of the weekly overview table on the home dashboard.
type OverviewRow struct {
	Date       Date   `json:"date"`
	Green      string `json:"green"`
	Orange     string `json:"orange"`
	Red        string `json:"red"`
	ActionText string `json:"action_text"`
}
