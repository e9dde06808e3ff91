package repositories

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// LeaveReader defines read operations for leave requests.
type LeaveReader interface {
	// FindLeaveByID retrieves a leave request, apperrors.ErrNotFound when absent.
	FindLeaveByID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error)

	// FindLeavesByUser retrieves all leave requests for a user, newest first.
	FindLeavesByUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error)

	// FindLeavesByUserAndStatus retrieves a user's leave requests with the given status.
	FindLeavesByUserAndStatus(ctx context.Context, userID string, status domain.LeaveStatus) ([]domain.LeaveRequest, error)

	// FindAllLeaves retrieves the full leave population.
	FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error)

	// FindLeavesByUserStartingInRange retrieves a user's leave requests whose
	// start date falls in [start, end], both ends inclusive.
	FindLeavesByUserStartingInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.LeaveRequest, error)

	// FindLeavesStartingInRange retrieves all leave requests whose start date
	// falls in [start, end], both ends inclusive.
	FindLeavesStartingInRange(ctx context.Context, start, end time.Time) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave requests.
type LeaveWriter interface {
	// SaveLeave inserts a new leave request.
	SaveLeave(ctx context.Context, leave domain.LeaveRequest) error

	// UpdateLeave updates an existing leave request by ID.
	UpdateLeave(ctx context.Context, leave domain.LeaveRequest) error
}

// LeaveRepositoryFacade combines all leave repository interfaces.
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
