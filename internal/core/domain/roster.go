package domain

import "time"

// ShiftType categorizes a rostered shift.
type ShiftType string

const (
	ShiftMorning   ShiftType = "MORNING"
	ShiftAfternoon ShiftType = "AFTERNOON"
	ShiftNight     ShiftType = "NIGHT"
	ShiftOff       ShiftType = "OFF"
)

// RosterEntry assigns a shift to a user on a date. At most one entry exists per
// (user, date); repeated planning for the same date updates the entry in place
// and keeps the original creator reference.
type RosterEntry struct {
	RosterID    string    `json:"rosterID"` // Primary key (UUID)
	UserID      string    `json:"userID"`
	ShiftDate   time.Time `json:"shiftDate"` // Calendar date, midnight UTC
	ShiftType   ShiftType `json:"shiftType"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedByID string    `json:"createdByID"` // UserID of the planner who created the entry
	AuditFields
}
