package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
)

// ClockInCooldown is the mandatory minimum elapsed time between a clock-out
// and the next clock-in. It is measured on wall-clock duration, not calendar
// days, so a 23:55 clock-out blocks a 00:05 clock-in the next morning.
const ClockInCooldown = 24 * time.Hour

var (
	ErrAlreadyClockedIn  = apperrors.NewConflictError("already clocked in today")
	ErrAlreadyClockedOut = apperrors.NewConflictError("already clocked out today")
	ErrNoClockInFound    = apperrors.NewInvalidStateError("no clock-in found for today")
	ErrClockInCooldown   = apperrors.NewInvalidStateError("cannot clock in within 24 hours of the last clock-out")
)

// attendanceService tracks daily clock-in/clock-out per user.
type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	userRepo       portsrepo.UserReader
	clock          Clock
}

// NewAttendanceService creates the attendance tracker.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, userRepo portsrepo.UserReader, clock Clock) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		clock:          clock,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) ClockIn(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}

	now := s.clock.Now()
	today := DateOf(now)

	record, err := s.attendanceRepo.FindAttendanceByUserAndDate(ctx, user.UserID, today)
	if err != nil {
		return nil, fmt.Errorf("loading today's attendance for user %s: %w", user.UserID, err)
	}
	if record != nil && record.ClockInTime != nil {
		return nil, ErrAlreadyClockedIn
	}

	latest, err := s.attendanceRepo.FindLatestAttendanceByUser(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading latest attendance for user %s: %w", user.UserID, err)
	}
	if latest != nil && latest.ClockOutTime != nil && now.Sub(*latest.ClockOutTime) < ClockInCooldown {
		return nil, ErrClockInCooldown
	}

	if record == nil {
		record = &domain.AttendanceRecord{
			AttendanceID: uuid.NewString(),
			UserID:       user.UserID,
			Date:         today,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     user.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: user.UserID,
			},
		}
		record.ClockInTime = &now
		record.Status = domain.AttendancePresent

		if err := s.attendanceRepo.SaveAttendance(ctx, *record); err != nil {
			// A concurrent clock-in for the same day loses the insert race on
			// the (user, date) unique constraint; report it the same way as
			// the pre-check.
			if errors.Is(err, apperrors.ErrConflict) {
				return nil, ErrAlreadyClockedIn
			}
			return nil, fmt.Errorf("saving attendance for user %s: %w", user.UserID, err)
		}
		return record, nil
	}

	record.ClockInTime = &now
	record.Status = domain.AttendancePresent
	record.LastUpdatedAt = now
	record.LastUpdatedBy = user.UserID

	if err := s.attendanceRepo.UpdateAttendance(ctx, *record); err != nil {
		return nil, fmt.Errorf("updating attendance %s: %w", record.AttendanceID, err)
	}
	return record, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}

	now := s.clock.Now()
	today := DateOf(now)

	record, err := s.attendanceRepo.FindAttendanceByUserAndDate(ctx, user.UserID, today)
	if err != nil {
		return nil, fmt.Errorf("loading today's attendance for user %s: %w", user.UserID, err)
	}
	if record == nil || record.ClockInTime == nil {
		return nil, ErrNoClockInFound
	}
	if record.ClockOutTime != nil {
		return nil, ErrAlreadyClockedOut
	}

	record.ClockOutTime = &now
	record.LastUpdatedAt = now
	record.LastUpdatedBy = user.UserID

	if err := s.attendanceRepo.UpdateAttendance(ctx, *record); err != nil {
		return nil, fmt.Errorf("updating attendance %s: %w", record.AttendanceID, err)
	}
	return record, nil
}

// Today returns nil without error when the user has no record yet; not having
// clocked in is a normal state, not a failure.
func (s *attendanceService) Today(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	record, err := s.attendanceRepo.FindAttendanceByUserAndDate(ctx, user.UserID, DateOf(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("loading today's attendance for user %s: %w", user.UserID, err)
	}
	return record, nil
}

func (s *attendanceService) ListForUser(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.attendanceRepo.FindAttendanceByUser(ctx, user.UserID)
}

func (s *attendanceService) ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.attendanceRepo.FindAttendanceByUserInRange(ctx, user.UserID, DateOf(start), DateOf(end))
}

func (s *attendanceService) ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	return s.attendanceRepo.FindAttendanceInRange(ctx, DateOf(start), DateOf(end))
}
