package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	"github.com/staffbridge/workforce_backend/internal/models"
)

type PgxSalaryRepository struct {
	db *pgxpool.Pool
}

func newPgxSalaryRepository(db *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &PgxSalaryRepository{db: db}
}

var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

func toModelSalary(d domain.SalaryRecord) models.SalaryRecord {
	return models.SalaryRecord{
		SalaryID:         d.SalaryID,
		UserID:           d.UserID,
		Year:             d.Year,
		Month:            d.Month,
		BaseSalary:       d.BaseSalary,
		TotalWorkingDays: d.TotalWorkingDays,
		PresentDays:      d.PresentDays,
		AbsentDays:       d.AbsentDays,
		LeaveDays:        d.LeaveDays,
		PerDayRate:       d.PerDayRate,
		EarnedSalary:     d.EarnedSalary,
		Deductions:       d.Deductions,
		NetSalary:        d.NetSalary,
		Notes:            d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainSalary(m models.SalaryRecord) domain.SalaryRecord {
	return domain.SalaryRecord{
		SalaryID:         m.SalaryID,
		UserID:           m.UserID,
		Year:             m.Year,
		Month:            m.Month,
		BaseSalary:       m.BaseSalary,
		TotalWorkingDays: m.TotalWorkingDays,
		PresentDays:      m.PresentDays,
		AbsentDays:       m.AbsentDays,
		LeaveDays:        m.LeaveDays,
		PerDayRate:       m.PerDayRate,
		EarnedSalary:     m.EarnedSalary,
		Deductions:       m.Deductions,
		NetSalary:        m.NetSalary,
		Notes:            m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const salaryColumns = `salary_id, user_id, year, month, base_salary, total_working_days, present_days, absent_days, leave_days, per_day_rate, earned_salary, deductions, net_salary, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSalary(row pgx.Row) (*models.SalaryRecord, error) {
	var m models.SalaryRecord
	err := row.Scan(
		&m.SalaryID,
		&m.UserID,
		&m.Year,
		&m.Month,
		&m.BaseSalary,
		&m.TotalWorkingDays,
		&m.PresentDays,
		&m.AbsentDays,
		&m.LeaveDays,
		&m.PerDayRate,
		&m.EarnedSalary,
		&m.Deductions,
		&m.NetSalary,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectSalaries(rows pgx.Rows) ([]domain.SalaryRecord, error) {
	salaries := make([]domain.SalaryRecord, 0)
	for rows.Next() {
		m, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary row: %w", err)
		}
		salaries = append(salaries, toDomainSalary(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating salary rows: %w", err)
	}
	return salaries, nil
}

func (r *PgxSalaryRepository) FindSalaryByID(ctx context.Context, salaryID string) (*domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE salary_id = $1;
	`
	m, err := scanSalary(r.db.QueryRow(ctx, query, salaryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find salary %s: %w", salaryID, err)
	}
	salary := toDomainSalary(*m)
	return &salary, nil
}

func (r *PgxSalaryRepository) FindSalaryByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE user_id = $1 AND year = $2 AND month = $3;
	`
	m, err := scanSalary(r.db.QueryRow(ctx, query, userID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find salary for user %s %d-%02d: %w", userID, year, month, err)
	}
	salary := toDomainSalary(*m)
	return &salary, nil
}

func (r *PgxSalaryRepository) FindSalariesByUser(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE user_id = $1
		ORDER BY year DESC, month DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectSalaries(rows)
}

func (r *PgxSalaryRepository) FindSalariesByUserAndYear(ctx context.Context, userID string, year int) ([]domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE user_id = $1 AND year = $2
		ORDER BY month;
	`
	rows, err := r.db.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries for user %s in %d: %w", userID, year, err)
	}
	defer rows.Close()
	return collectSalaries(rows)
}

func (r *PgxSalaryRepository) FindSalariesByMonth(ctx context.Context, year, month int) ([]domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records
		WHERE year = $1 AND month = $2
		ORDER BY user_id;
	`
	rows, err := r.db.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()
	return collectSalaries(rows)
}

func (r *PgxSalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	m := toModelSalary(salary)
	query := `
		INSERT INTO salary_records (salary_id, user_id, year, month, base_salary, total_working_days, present_days, absent_days, leave_days, per_day_rate, earned_salary, deductions, net_salary, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		m.SalaryID,
		m.UserID,
		m.Year,
		m.Month,
		m.BaseSalary,
		m.TotalWorkingDays,
		m.PresentDays,
		m.AbsentDays,
		m.LeaveDays,
		m.PerDayRate,
		m.EarnedSalary,
		m.Deductions,
		m.NetSalary,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError(fmt.Sprintf("salary for user %s %d-%02d already exists", m.UserID, m.Year, m.Month))
		}
		return fmt.Errorf("failed to save salary %s: %w", m.SalaryID, err)
	}
	return nil
}

func (r *PgxSalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord) error {
	m := toModelSalary(salary)
	query := `
		UPDATE salary_records
		SET net_salary = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE salary_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.SalaryID,
		m.NetSalary,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary %s: %w", m.SalaryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("salary " + m.SalaryID + " not found")
	}
	return nil
}
