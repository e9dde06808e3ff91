package repositories

import (
	"context"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// SalaryReader defines read operations for salary records.
type SalaryReader interface {
	// FindSalaryByID retrieves a salary record, apperrors.ErrNotFound when absent.
	FindSalaryByID(ctx context.Context, salaryID string) (*domain.SalaryRecord, error)

	// FindSalaryByUserAndMonth retrieves the record for (user, year, month);
	// (nil, nil) when no record exists.
	FindSalaryByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.SalaryRecord, error)

	// FindSalariesByUser retrieves all salary records for a user, newest first.
	FindSalariesByUser(ctx context.Context, userID string) ([]domain.SalaryRecord, error)

	// FindSalariesByUserAndYear retrieves a user's records for one year.
	FindSalariesByUserAndYear(ctx context.Context, userID string, year int) ([]domain.SalaryRecord, error)

	// FindSalariesByMonth retrieves records across all users for (year, month).
	FindSalariesByMonth(ctx context.Context, year, month int) ([]domain.SalaryRecord, error)
}

// SalaryWriter defines write operations for salary records.
type SalaryWriter interface {
	// SaveSalary inserts a new salary record. A unique-constraint violation on
	// (user_id, year, month) surfaces as apperrors.ErrConflict.
	SaveSalary(ctx context.Context, salary domain.SalaryRecord) error

	// UpdateSalary updates an existing salary record by ID.
	UpdateSalary(ctx context.Context, salary domain.SalaryRecord) error
}

// SalaryRepositoryFacade combines all salary repository interfaces.
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
}
