package dto

import "github.com/staffbridge/workforce_backend/internal/core/domain"

// ApplyLeaveRequest defines the data needed to apply for leave.
// Date ordering is deliberately not validated here; the ledger accepts the
// range as given and callers own any ordering policy.
type ApplyLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required,dateonly"`
	EndDate   string `json:"endDate" binding:"required,dateonly"`
	LeaveType string `json:"leaveType" binding:"required"`
	Reason    string `json:"reason"`
}

// DecideLeaveRequest defines the approver's input on approve/reject.
type DecideLeaveRequest struct {
	Notes string `json:"notes"`
}

// LeaveResponse defines the data returned for a leave request.
type LeaveResponse struct {
	LeaveID       string  `json:"leaveID"`
	UserID        string  `json:"userID"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	LeaveType     string  `json:"leaveType"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
	ApproverID    *string `json:"approverID,omitempty"`
	ApproverNotes string  `json:"approverNotes,omitempty"`
}

// ToLeaveResponse converts a domain.LeaveRequest to a response DTO.
func ToLeaveResponse(l *domain.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		LeaveID:       l.LeaveID,
		UserID:        l.UserID,
		StartDate:     FormatDateOnly(l.StartDate),
		EndDate:       FormatDateOnly(l.EndDate),
		LeaveType:     l.LeaveType,
		Reason:        l.Reason,
		Status:        string(l.Status),
		ApproverID:    l.ApproverID,
		ApproverNotes: l.ApproverNotes,
	}
}

// ToListLeaveResponse converts a slice of leave requests to response DTOs.
func ToListLeaveResponse(leaves []domain.LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i := range leaves {
		res[i] = ToLeaveResponse(&leaves[i])
	}
	return res
}
