package domain

import "time"

// LeaveStatus is the lifecycle state of a leave request. PENDING is initial;
// APPROVED and REJECTED are terminal.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is a user's request for leave over an inclusive date range.
type LeaveRequest struct {
	LeaveID       string      `json:"leaveID"` // Primary key (UUID)
	UserID        string      `json:"userID"`
	StartDate     time.Time   `json:"startDate"`
	EndDate       time.Time   `json:"endDate"` // Inclusive
	LeaveType     string      `json:"leaveType"`
	Reason        string      `json:"reason"`
	Status        LeaveStatus `json:"status"`
	ApproverID    *string     `json:"approverID,omitempty"` // Set on approve/reject
	ApproverNotes string      `json:"approverNotes,omitempty"`
	AuditFields
}
