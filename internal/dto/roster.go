package dto

import "github.com/staffbridge/workforce_backend/internal/core/domain"

// UpsertRosterRequest defines the data for creating or updating a shift entry.
type UpsertRosterRequest struct {
	UserID    string `json:"userID" binding:"required"`
	ShiftDate string `json:"shiftDate" binding:"required,dateonly"`
	ShiftType string `json:"shiftType" binding:"required,shifttype"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

// RosterResponse defines the data returned for a roster entry.
type RosterResponse struct {
	RosterID    string `json:"rosterID"`
	UserID      string `json:"userID"`
	ShiftDate   string `json:"shiftDate"`
	ShiftType   string `json:"shiftType"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedByID string `json:"createdByID"`
}

// ToRosterResponse converts a domain.RosterEntry to a response DTO.
func ToRosterResponse(r *domain.RosterEntry) RosterResponse {
	return RosterResponse{
		RosterID:    r.RosterID,
		UserID:      r.UserID,
		ShiftDate:   FormatDateOnly(r.ShiftDate),
		ShiftType:   string(r.ShiftType),
		Location:    r.Location,
		Notes:       r.Notes,
		CreatedByID: r.CreatedByID,
	}
}

// ToListRosterResponse converts a slice of roster entries to response DTOs.
func ToListRosterResponse(entries []domain.RosterEntry) []RosterResponse {
	res := make([]RosterResponse, len(entries))
	for i := range entries {
		res[i] = ToRosterResponse(&entries[i])
	}
	return res
}
