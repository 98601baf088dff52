package response

import "github.com/gofrs/uuid"

type User struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}
