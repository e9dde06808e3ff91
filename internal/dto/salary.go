package dto

import (
	"github.com/shopspring/decimal"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// CalculateSalaryRequest defines the inputs for a monthly reconciliation.
type CalculateSalaryRequest struct {
	UserID     string          `json:"userID" binding:"required"`
	Year       int             `json:"year" binding:"required,gte=2000,lte=2100"`
	Month      int             `json:"month" binding:"required,gte=1,lte=12"`
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"required"`
}

// UpdateSalaryRequest defines the manual correction of an existing record.
type UpdateSalaryRequest struct {
	NetSalary decimal.Decimal `json:"netSalary" binding:"required"`
	Notes     string          `json:"notes"`
}

// SalaryResponse defines the data returned for a salary record.
type SalaryResponse struct {
	SalaryID         string          `json:"salaryID"`
	UserID           string          `json:"userID"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	TotalWorkingDays int             `json:"totalWorkingDays"`
	PresentDays      int             `json:"presentDays"`
	AbsentDays       int             `json:"absentDays"`
	LeaveDays        int             `json:"leaveDays"`
	PerDayRate       decimal.Decimal `json:"perDayRate"`
	EarnedSalary     decimal.Decimal `json:"earnedSalary"`
	Deductions       decimal.Decimal `json:"deductions"`
	NetSalary        decimal.Decimal `json:"netSalary"`
	Notes            string          `json:"notes,omitempty"`
}

// ToSalaryResponse converts a domain.SalaryRecord to a response DTO.
func ToSalaryResponse(s *domain.SalaryRecord) SalaryResponse {
	return SalaryResponse{
		SalaryID:         s.SalaryID,
		UserID:           s.UserID,
		Year:             s.Year,
		Month:            s.Month,
		BaseSalary:       s.BaseSalary,
		TotalWorkingDays: s.TotalWorkingDays,
		PresentDays:      s.PresentDays,
		AbsentDays:       s.AbsentDays,
		LeaveDays:        s.LeaveDays,
		PerDayRate:       s.PerDayRate,
		EarnedSalary:     s.EarnedSalary,
		Deductions:       s.Deductions,
		NetSalary:        s.NetSalary,
		Notes:            s.Notes,
	}
}

// ToListSalaryResponse converts a slice of salary records to response DTOs.
func ToListSalaryResponse(records []domain.SalaryRecord) []SalaryResponse {
	res := make([]SalaryResponse, len(records))
	for i := range records {
		res[i] = ToSalaryResponse(&records[i])
	}
	return res
}
