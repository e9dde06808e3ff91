package services

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// LeaveSvcFacade exposes the leave ledger operations.
type LeaveSvcFacade interface {
	// Apply files a PENDING leave request for the user and notifies HR
	// best-effort; a failed notification never rolls back the request.
	Apply(ctx context.Context, userID string, req dto.ApplyLeaveRequest) (*domain.LeaveRequest, error)

	// Approve marks the leave APPROVED, recording approver and notes. A leave
	// that was already decided is overwritten without error.
	Approve(ctx context.Context, leaveID, approverID, notes string) (*domain.LeaveRequest, error)

	// Reject marks the leave REJECTED, recording approver and notes. Same
	// override semantics as Approve.
	Reject(ctx context.Context, leaveID, approverID, notes string) (*domain.LeaveRequest, error)

	ListForUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error)
	ListPendingForUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error)

	// ListAllPending returns every PENDING request across users for HR triage.
	ListAllPending(ctx context.Context) ([]domain.LeaveRequest, error)

	// Range queries are keyed on the leave start date.
	ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.LeaveRequest, error)
	ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.LeaveRequest, error)
}
