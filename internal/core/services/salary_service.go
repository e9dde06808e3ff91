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
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/utils/payroll"
)

var (
	ErrSalaryAlreadyExists = apperrors.NewConflictError("salary already calculated for this month")
	ErrSalaryNotFound      = apperrors.NewNotFoundError("salary record not found")
)

// salaryService reconciles attendance and leave history into monthly payroll
// records. Reconciliation is strictly create-once per (user, year, month); the
// only later mutation is the explicit net-salary correction in Update.
type salaryService struct {
	salaryRepo     portsrepo.SalaryRepositoryFacade
	attendanceRepo portsrepo.AttendanceReader
	leaveRepo      portsrepo.LeaveReader
	userRepo       portsrepo.UserReader
	clock          Clock
}

// NewSalaryService creates the salary reconciler.
func NewSalaryService(
	salaryRepo portsrepo.SalaryRepositoryFacade,
	attendanceRepo portsrepo.AttendanceReader,
	leaveRepo portsrepo.LeaveReader,
	userRepo portsrepo.UserReader,
	clock Clock,
) portssvc.SalarySvcFacade {
	return &salaryService{
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		userRepo:       userRepo,
		clock:          clock,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) Calculate(ctx context.Context, req dto.CalculateSalaryRequest, createdBy string) (*domain.SalaryRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", req.UserID, err)
	}

	existing, err := s.salaryRepo.FindSalaryByUserAndMonth(ctx, user.UserID, req.Year, req.Month)
	if err != nil {
		return nil, fmt.Errorf("checking existing salary for user %s: %w", user.UserID, err)
	}
	if existing != nil {
		return nil, ErrSalaryAlreadyExists
	}

	month := time.Month(req.Month)
	first, last := payroll.MonthBounds(req.Year, month)

	attendance, err := s.attendanceRepo.FindAttendanceByUserInRange(ctx, user.UserID, first, last)
	if err != nil {
		return nil, fmt.Errorf("loading attendance for user %s: %w", user.UserID, err)
	}
	presentDays := payroll.CountPresent(attendance)

	// Approved leave is counted per request starting in the month, not per
	// day spanned; payroll.Reconcile documents the policy.
	leaves, err := s.leaveRepo.FindLeavesByUserStartingInRange(ctx, user.UserID, first, last)
	if err != nil {
		return nil, fmt.Errorf("loading leaves for user %s: %w", user.UserID, err)
	}
	leaveDays := payroll.CountApproved(leaves)

	breakdown, err := payroll.Reconcile(req.BaseSalary, payroll.MonthDays(req.Year, month), presentDays, leaveDays)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	now := s.clock.Now()
	record := domain.SalaryRecord{
		SalaryID:         uuid.NewString(),
		UserID:           user.UserID,
		Year:             req.Year,
		Month:            req.Month,
		BaseSalary:       req.BaseSalary,
		TotalWorkingDays: breakdown.TotalDays,
		PresentDays:      breakdown.PresentDays,
		AbsentDays:       breakdown.AbsentDays,
		LeaveDays:        breakdown.LeaveDays,
		PerDayRate:       breakdown.PerDayRate,
		EarnedSalary:     breakdown.EarnedSalary,
		Deductions:       breakdown.Deductions,
		NetSalary:        breakdown.NetSalary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.salaryRepo.SaveSalary(ctx, record); err != nil {
		// The pre-check is only an optimization; a concurrent calculation for
		// the same month loses on the (user, year, month) unique constraint
		// and must surface as the same conflict.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrSalaryAlreadyExists
		}
		return nil, fmt.Errorf("saving salary for user %s: %w", user.UserID, err)
	}
	return &record, nil
}

func (s *salaryService) Update(ctx context.Context, salaryID string, req dto.UpdateSalaryRequest, updatedBy string) (*domain.SalaryRecord, error) {
	record, err := s.salaryRepo.FindSalaryByID(ctx, salaryID)
	if err != nil {
		return nil, fmt.Errorf("resolving salary %s: %w", salaryID, err)
	}

	record.NetSalary = req.NetSalary
	record.Notes = req.Notes
	record.LastUpdatedAt = s.clock.Now()
	record.LastUpdatedBy = updatedBy

	if err := s.salaryRepo.UpdateSalary(ctx, *record); err != nil {
		return nil, fmt.Errorf("updating salary %s: %w", record.SalaryID, err)
	}
	return record, nil
}

func (s *salaryService) ListForUser(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.salaryRepo.FindSalariesByUser(ctx, user.UserID)
}

func (s *salaryService) GetForMonth(ctx context.Context, userID string, year, month int) (*domain.SalaryRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	record, err := s.salaryRepo.FindSalaryByUserAndMonth(ctx, user.UserID, year, month)
	if err != nil {
		return nil, fmt.Errorf("loading salary for user %s: %w", user.UserID, err)
	}
	if record == nil {
		return nil, ErrSalaryNotFound
	}
	return record, nil
}

func (s *salaryService) ListForUserYear(ctx context.Context, userID string, year int) ([]domain.SalaryRecord, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.salaryRepo.FindSalariesByUserAndYear(ctx, user.UserID, year)
}

func (s *salaryService) ListAllForMonth(ctx context.Context, year, month int) ([]domain.SalaryRecord, error) {
	return s.salaryRepo.FindSalariesByMonth(ctx, year, month)
}
