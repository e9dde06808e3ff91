package models

import "time"

// LeaveRequest represents one leave request row.
type LeaveRequest struct {
	LeaveID       string    `json:"leaveID" db:"leave_id"`
	UserID        string    `json:"userID" db:"user_id"`
	StartDate     time.Time `json:"startDate" db:"start_date"`
	EndDate       time.Time `json:"endDate" db:"end_date"`
	LeaveType     string    `json:"leaveType" db:"leave_type"`
	Reason        string    `json:"reason" db:"reason"`
	Status        string    `json:"status" db:"status"`
	ApproverID    *string   `json:"approverID,omitempty" db:"approver_id"`
	ApproverNotes string    `json:"approverNotes,omitempty" db:"approver_notes"`
	AuditFields
}
