package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	"github.com/staffbridge/workforce_backend/internal/models"
)

type PgxLeaveRepository struct {
	db *pgxpool.Pool
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{db: db}
}

var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

func toModelLeave(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		LeaveID:       d.LeaveID,
		UserID:        d.UserID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		LeaveType:     d.LeaveType,
		Reason:        d.Reason,
		Status:        string(d.Status),
		ApproverID:    d.ApproverID,
		ApproverNotes: d.ApproverNotes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainLeave(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		LeaveID:       m.LeaveID,
		UserID:        m.UserID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		LeaveType:     m.LeaveType,
		Reason:        m.Reason,
		Status:        domain.LeaveStatus(m.Status),
		ApproverID:    m.ApproverID,
		ApproverNotes: m.ApproverNotes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const leaveColumns = `leave_id, user_id, start_date, end_date, leave_type, reason, status, approver_id, approver_notes, created_at, created_by, last_updated_at, last_updated_by`

func scanLeave(row pgx.Row) (*models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.LeaveID,
		&m.UserID,
		&m.StartDate,
		&m.EndDate,
		&m.LeaveType,
		&m.Reason,
		&m.Status,
		&m.ApproverID,
		&m.ApproverNotes,
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

func collectLeaves(rows pgx.Rows) ([]domain.LeaveRequest, error) {
	leaves := make([]domain.LeaveRequest, 0)
	for rows.Next() {
		m, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, toDomainLeave(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating leave rows: %w", err)
	}
	return leaves, nil
}

func (r *PgxLeaveRepository) FindLeaveByID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE leave_id = $1;
	`
	m, err := scanLeave(r.db.QueryRow(ctx, query, leaveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave %s: %w", leaveID, err)
	}
	leave := toDomainLeave(*m)
	return &leave, nil
}

func (r *PgxLeaveRepository) FindLeavesByUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY start_date DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *PgxLeaveRepository) FindLeavesByUserAndStatus(ctx context.Context, userID string, status domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE user_id = $1 AND status = $2
		ORDER BY start_date DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s leaves for user %s: %w", status, userID, err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *PgxLeaveRepository) FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		ORDER BY start_date DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *PgxLeaveRepository) FindLeavesByUserStartingInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE user_id = $1 AND start_date BETWEEN $2 AND $3
		ORDER BY start_date;
	`
	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave range for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *PgxLeaveRepository) FindLeavesStartingInRange(ctx context.Context, start, end time.Time) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE start_date BETWEEN $1 AND $2
		ORDER BY start_date, user_id;
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave range: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *PgxLeaveRepository) SaveLeave(ctx context.Context, leave domain.LeaveRequest) error {
	m := toModelLeave(leave)
	query := `
		INSERT INTO leave_requests (leave_id, user_id, start_date, end_date, leave_type, reason, status, approver_id, approver_notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.LeaveID,
		m.UserID,
		m.StartDate,
		m.EndDate,
		m.LeaveType,
		m.Reason,
		m.Status,
		m.ApproverID,
		m.ApproverNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave %s: %w", m.LeaveID, err)
	}
	return nil
}

func (r *PgxLeaveRepository) UpdateLeave(ctx context.Context, leave domain.LeaveRequest) error {
	m := toModelLeave(leave)
	query := `
		UPDATE leave_requests
		SET status = $2, approver_id = $3, approver_notes = $4, last_updated_at = $5, last_updated_by = $6
		WHERE leave_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.LeaveID,
		m.Status,
		m.ApproverID,
		m.ApproverNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave %s: %w", m.LeaveID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("leave " + m.LeaveID + " not found")
	}
	return nil
}
