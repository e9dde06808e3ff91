// Package payroll holds the pure monthly reconciliation arithmetic so it can
// be exercised independently of repositories and services.
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// MonthDays returns the number of calendar days in the given month.
func MonthDays(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last calendar day of the month, both at
// midnight UTC, for inclusive range queries.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// Breakdown is the derived money portion of a salary record.
type Breakdown struct {
	TotalDays    int
	PresentDays  int
	AbsentDays   int
	LeaveDays    int
	PerDayRate   decimal.Decimal
	EarnedSalary decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
}

// Reconcile derives the payroll breakdown for a month.
//
// The per-day rate is the only rounding point: base salary divided by the
// calendar day count, rounded to 2 decimal places half-up. Earned salary,
// deductions and net salary are plain multiples of that rounded rate, so the
// rounding error grows linearly with the day counts instead of compounding.
// Approved leave is paid: net = earned + perDayRate * leaveDays. leaveDays
// counts approved leave *requests* starting in the month, not the days they
// span. Absent days are clamped at zero so over-counted leave cannot produce a
// negative deduction.
func Reconcile(baseSalary decimal.Decimal, totalDays, presentDays, leaveDays int) (Breakdown, error) {
	if totalDays < 28 || totalDays > 31 {
		return Breakdown{}, fmt.Errorf("implausible calendar day count %d", totalDays)
	}
	if baseSalary.IsNegative() {
		return Breakdown{}, fmt.Errorf("base salary must not be negative, got %s", baseSalary)
	}

	absentDays := totalDays - presentDays - leaveDays
	if absentDays < 0 {
		absentDays = 0
	}

	// DivRound rounds half away from zero, which is half-up for the
	// non-negative amounts handled here.
	perDayRate := baseSalary.DivRound(decimal.NewFromInt(int64(totalDays)), 2)
	earned := perDayRate.Mul(decimal.NewFromInt(int64(presentDays)))
	deductions := perDayRate.Mul(decimal.NewFromInt(int64(absentDays)))
	net := earned.Add(perDayRate.Mul(decimal.NewFromInt(int64(leaveDays))))

	return Breakdown{
		TotalDays:    totalDays,
		PresentDays:  presentDays,
		AbsentDays:   absentDays,
		LeaveDays:    leaveDays,
		PerDayRate:   perDayRate,
		EarnedSalary: earned,
		Deductions:   deductions,
		NetSalary:    net,
	}, nil
}

// CountPresent tallies attendance records whose status is PRESENT.
func CountPresent(records []domain.AttendanceRecord) int {
	count := 0
	for _, r := range records {
		if r.Status == domain.AttendancePresent {
			count++
		}
	}
	return count
}

// CountApproved tallies leave requests whose status is APPROVED.
func CountApproved(leaves []domain.LeaveRequest) int {
	count := 0
	for _, l := range leaves {
		if l.Status == domain.LeaveApproved {
			count++
		}
	}
	return count
}
