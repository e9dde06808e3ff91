package domain

import "time"

// AttendanceStatus is the derived state of a user's day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceOnLeave AttendanceStatus = "ON_LEAVE"
)

// AttendanceRecord tracks one user's clock-in/clock-out for one calendar date.
// At most one record exists per (user, date); the store enforces this with a
// unique constraint.
type AttendanceRecord struct {
	AttendanceID string           `json:"attendanceID"` // Primary key (UUID)
	UserID       string           `json:"userID"`
	Date         time.Time        `json:"date"` // Calendar date, midnight UTC
	ClockInTime  *time.Time       `json:"clockInTime,omitempty"`
	ClockOutTime *time.Time       `json:"clockOutTime,omitempty"`
	Status       AttendanceStatus `json:"status"`
	Note         string           `json:"note,omitempty"`
	AuditFields
}
