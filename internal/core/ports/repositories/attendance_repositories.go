package repositories

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data.
type AttendanceReader interface {
	// FindAttendanceByID retrieves a record by its ID, apperrors.ErrNotFound when absent.
	FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error)

	// FindAttendanceByUserAndDate retrieves the record for one user on one
	// calendar date; (nil, nil) when no record exists.
	FindAttendanceByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error)

	// FindLatestAttendanceByUser retrieves the user's most recent record by
	// date; (nil, nil) when the user has none.
	FindLatestAttendanceByUser(ctx context.Context, userID string) (*domain.AttendanceRecord, error)

	// FindAttendanceByUser retrieves all records for a user, newest first.
	FindAttendanceByUser(ctx context.Context, userID string) ([]domain.AttendanceRecord, error)

	// FindAttendanceByUserInRange retrieves a user's records with dates in
	// [start, end], both ends inclusive.
	FindAttendanceByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceRecord, error)

	// FindAttendanceInRange retrieves records across all users with dates in
	// [start, end], both ends inclusive.
	FindAttendanceInRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance data.
type AttendanceWriter interface {
	// SaveAttendance inserts a new record. A unique-constraint violation on
	// (user_id, attendance_date) surfaces as apperrors.ErrConflict.
	SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error

	// UpdateAttendance updates an existing record by ID.
	UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
