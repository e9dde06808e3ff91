package services

import (
	"context"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// SalarySvcFacade exposes the monthly salary reconciliation operations.
type SalarySvcFacade interface {
	// Calculate reconciles attendance and leave history with the base salary
	// into a new record for (user, year, month). Strictly create-once: a
	// second call for the same month fails with a conflict and leaves the
	// original record unchanged.
	Calculate(ctx context.Context, req dto.CalculateSalaryRequest, createdBy string) (*domain.SalaryRecord, error)

	// Update overrides net salary and notes on an existing record. No other
	// field is re-derived.
	Update(ctx context.Context, salaryID string, req dto.UpdateSalaryRequest, updatedBy string) (*domain.SalaryRecord, error)

	ListForUser(ctx context.Context, userID string) ([]domain.SalaryRecord, error)
	GetForMonth(ctx context.Context, userID string, year, month int) (*domain.SalaryRecord, error)
	ListForUserYear(ctx context.Context, userID string, year int) ([]domain.SalaryRecord, error)
	ListAllForMonth(ctx context.Context, year, month int) ([]domain.SalaryRecord, error)
}
