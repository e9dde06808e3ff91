package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

var payrollHeaders = []string{
	"Salary ID", "User ID", "Year", "Month", "Base Salary", "Total Days",
	"Present Days", "Absent Days", "Leave Days", "Per Day Rate",
	"Earned Salary", "Deductions", "Net Salary", "Notes",
}

// BuildMonthlyPayrollWorkbook renders the reconciled salary records for one
// month into an xlsx workbook. Decimal amounts are written as strings so the
// sheet shows the exact reconciled values.
func BuildMonthlyPayrollWorkbook(records []domain.SalaryRecord, year, month int) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("Payroll %d-%02d", year, month)
	f.SetSheetName("Sheet1", sheet)

	for i, header := range payrollHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header %q: %w", header, err)
		}
	}

	for rowIdx, record := range records {
		values := []interface{}{
			record.SalaryID,
			record.UserID,
			record.Year,
			record.Month,
			record.BaseSalary.String(),
			record.TotalWorkingDays,
			record.PresentDays,
			record.AbsentDays,
			record.LeaveDays,
			record.PerDayRate.String(),
			record.EarnedSalary.String(),
			record.Deductions.String(),
			record.NetSalary.String(),
			record.Notes,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", rowIdx+2, err)
			}
		}
	}

	return f, nil
}
