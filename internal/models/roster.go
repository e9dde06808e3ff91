package models

import "time"

// RosterEntry represents one shift assignment row, unique per (user_id, shift_date).
type RosterEntry struct {
	RosterID    string    `json:"rosterID" db:"roster_id"`
	UserID      string    `json:"userID" db:"user_id"`
	ShiftDate   time.Time `json:"shiftDate" db:"shift_date"`
	ShiftType   string    `json:"shiftType" db:"shift_type"`
	Location    string    `json:"location,omitempty" db:"location"`
	Notes       string    `json:"notes,omitempty" db:"notes"`
	CreatedByID string    `json:"createdByID" db:"created_by_id"`
	AuditFields
}
