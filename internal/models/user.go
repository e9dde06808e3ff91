package models

import "time"

// User represents a user row. The workforce core reads users; it never writes
// role or active state except through the explicit deactivation path.
type User struct {
	UserID string `json:"userID" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Email  string `json:"email" db:"email"`
	Role   string `json:"role" db:"role"`
	Active bool   `json:"active" db:"active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
