package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Role      string     `json:"role" db:"role"`
	Password  *string    `json:"-" db:"password"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty" db:"manager_id"`
	CompanyID *uuid.UUID `json:"company_id,omitempty" db:"company_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// ManagesOthers reports whether the home dashboard pools direct reports into the user's view.
func (u User) ManagesOthers() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
