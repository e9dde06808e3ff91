package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	"github.com/staffbridge/workforce_backend/internal/models"
)

type PgxAttendanceRepository struct {
	db *pgxpool.Pool
}

func newPgxAttendanceRepository(db *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{db: db}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func toModelAttendance(d domain.AttendanceRecord) models.AttendanceRecord {
	return models.AttendanceRecord{
		AttendanceID: d.AttendanceID,
		UserID:       d.UserID,
		Date:         d.Date,
		ClockInTime:  d.ClockInTime,
		ClockOutTime: d.ClockOutTime,
		Status:       string(d.Status),
		Note:         d.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainAttendance(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		AttendanceID: m.AttendanceID,
		UserID:       m.UserID,
		Date:         m.Date,
		ClockInTime:  m.ClockInTime,
		ClockOutTime: m.ClockOutTime,
		Status:       domain.AttendanceStatus(m.Status),
		Note:         m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const attendanceColumns = `attendance_id, user_id, attendance_date, clock_in_time, clock_out_time, status, note, created_at, created_by, last_updated_at, last_updated_by`

func scanAttendance(row pgx.Row) (*models.AttendanceRecord, error) {
	var m models.AttendanceRecord
	err := row.Scan(
		&m.AttendanceID,
		&m.UserID,
		&m.Date,
		&m.ClockInTime,
		&m.ClockOutTime,
		&m.Status,
		&m.Note,
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

func collectAttendance(rows pgx.Rows) ([]domain.AttendanceRecord, error) {
	records := make([]domain.AttendanceRecord, 0)
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, toDomainAttendance(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating attendance rows: %w", err)
	}
	return records, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE attendance_id = $1;
	`
	m, err := scanAttendance(r.db.QueryRow(ctx, query, attendanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance %s: %w", attendanceID, err)
	}
	record := toDomainAttendance(*m)
	return &record, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND attendance_date = $2;
	`
	m, err := scanAttendance(r.db.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance for user %s on %s: %w", userID, date.Format("2006-01-02"), err)
	}
	record := toDomainAttendance(*m)
	return &record, nil
}

func (r *PgxAttendanceRepository) FindLatestAttendanceByUser(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		ORDER BY attendance_date DESC
		LIMIT 1;
	`
	m, err := scanAttendance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest attendance for user %s: %w", userID, err)
	}
	record := toDomainAttendance(*m)
	return &record, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByUser(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		ORDER BY attendance_date DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND attendance_date BETWEEN $2 AND $3
		ORDER BY attendance_date;
	`
	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) FindAttendanceInRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE attendance_date BETWEEN $1 AND $2
		ORDER BY attendance_date, user_id;
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	m := toModelAttendance(record)
	query := `
		INSERT INTO attendance_records (attendance_id, user_id, attendance_date, clock_in_time, clock_out_time, status, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.AttendanceID,
		m.UserID,
		m.Date,
		m.ClockInTime,
		m.ClockOutTime,
		m.Status,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("attendance for user " + m.UserID + " on " + m.Date.Format("2006-01-02") + " already exists")
		}
		return fmt.Errorf("failed to save attendance %s: %w", m.AttendanceID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	m := toModelAttendance(record)
	query := `
		UPDATE attendance_records
		SET clock_in_time = $2, clock_out_time = $3, status = $4, note = $5, last_updated_at = $6, last_updated_by = $7
		WHERE attendance_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.AttendanceID,
		m.ClockInTime,
		m.ClockOutTime,
		m.Status,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance %s: %w", m.AttendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("attendance " + m.AttendanceID + " not found")
	}
	return nil
}
