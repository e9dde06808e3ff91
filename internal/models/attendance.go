package models

import "time"

// AttendanceRecord represents one attendance row, unique per (user_id, attendance_date).
type AttendanceRecord struct {
	AttendanceID string     `json:"attendanceID" db:"attendance_id"`
	UserID       string     `json:"userID" db:"user_id"`
	Date         time.Time  `json:"date" db:"attendance_date"`
	ClockInTime  *time.Time `json:"clockInTime,omitempty" db:"clock_in_time"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty" db:"clock_out_time"`
	Status       string     `json:"status" db:"status"`
	Note         string     `json:"note,omitempty" db:"note"`
	AuditFields
}
