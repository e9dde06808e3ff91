package domain

import "time"

// Role classifies a user for authorization and message-flow decisions.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
)

// User represents an account in the system. The workforce core only reads
// users; role and active state are owned by the surrounding user management.
type User struct {
	UserID string `json:"userID"` // Primary key (UUID)
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
