package dto

import (
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID string     `json:"attendanceID"`
	UserID       string     `json:"userID"`
	Date         string     `json:"date"`
	ClockInTime  *time.Time `json:"clockInTime,omitempty"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty"`
	Status       string     `json:"status"`
	Note         string     `json:"note,omitempty"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to a response DTO.
func ToAttendanceResponse(a *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		UserID:       a.UserID,
		Date:         FormatDateOnly(a.Date),
		ClockInTime:  a.ClockInTime,
		ClockOutTime: a.ClockOutTime,
		Status:       string(a.Status),
		Note:         a.Note,
	}
}

// ToListAttendanceResponse converts a slice of records to response DTOs.
func ToListAttendanceResponse(records []domain.AttendanceRecord) []AttendanceResponse {
	res := make([]AttendanceResponse, len(records))
	for i := range records {
		res[i] = ToAttendanceResponse(&records[i])
	}
	return res
}
