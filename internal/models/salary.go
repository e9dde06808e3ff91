package models

import "github.com/shopspring/decimal"

// SalaryRecord represents one reconciled payroll row, unique per (user_id, year, month).
type SalaryRecord struct {
	SalaryID         string          `json:"salaryID" db:"salary_id"`
	UserID           string          `json:"userID" db:"user_id"`
	Year             int             `json:"year" db:"year"`
	Month            int             `json:"month" db:"month"`
	BaseSalary       decimal.Decimal `json:"baseSalary" db:"base_salary"`
	TotalWorkingDays int             `json:"totalWorkingDays" db:"total_working_days"`
	PresentDays      int             `json:"presentDays" db:"present_days"`
	AbsentDays       int             `json:"absentDays" db:"absent_days"`
	LeaveDays        int             `json:"leaveDays" db:"leave_days"`
	PerDayRate       decimal.Decimal `json:"perDayRate" db:"per_day_rate"`
	EarnedSalary     decimal.Decimal `json:"earnedSalary" db:"earned_salary"`
	Deductions       decimal.Decimal `json:"deductions" db:"deductions"`
	NetSalary        decimal.Decimal `json:"netSalary" db:"net_salary"`
	Notes            string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}
