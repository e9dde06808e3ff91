package domain

import "github.com/shopspring/decimal"

// SalaryRecord is the reconciled payroll outcome for one user and month.
// At most one record exists per (user, year, month); reconciliation is strictly
// create-once and the store enforces the uniqueness with a constraint. The only
// mutation allowed after creation is an explicit HR correction of NetSalary and
// Notes.
type SalaryRecord struct {
	SalaryID         string          `json:"salaryID"` // Primary key (UUID)
	UserID           string          `json:"userID"`
	Year             int             `json:"year"`
	Month            int             `json:"month"` // 1-12
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	TotalWorkingDays int             `json:"totalWorkingDays"` // Calendar days in the month
	PresentDays      int             `json:"presentDays"`
	AbsentDays       int             `json:"absentDays"`
	LeaveDays        int             `json:"leaveDays"`
	PerDayRate       decimal.Decimal `json:"perDayRate"`
	EarnedSalary     decimal.Decimal `json:"earnedSalary"`
	Deductions       decimal.Decimal `json:"deductions"`
	NetSalary        decimal.Decimal `json:"netSalary"`
	Notes            string          `json:"notes,omitempty"`
	AuditFields
}
