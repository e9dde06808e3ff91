package services

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// AttendanceSvcFacade exposes the attendance tracker operations.
type AttendanceSvcFacade interface {
	// ClockIn records the start of today's shift for the user. Fails with a
	// conflict when today's record already has a clock-in, and with an
	// invalid-state error when fewer than 24 hours have elapsed since the
	// user's most recent clock-out.
	ClockIn(ctx context.Context, userID string) (*domain.AttendanceRecord, error)

	// ClockOut records the end of today's shift. Fails with an invalid-state
	// error when there is no clock-in today, and with a conflict when a
	// clock-out is already set.
	ClockOut(ctx context.Context, userID string) (*domain.AttendanceRecord, error)

	// Today returns today's record for the user, or nil when the user has not
	// clocked in yet.
	Today(ctx context.Context, userID string) (*domain.AttendanceRecord, error)

	ListForUser(ctx context.Context, userID string) ([]domain.AttendanceRecord, error)
	ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceRecord, error)
	ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error)
}
