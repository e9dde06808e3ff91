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

type PgxRosterRepository struct {
	db *pgxpool.Pool
}

func newPgxRosterRepository(db *pgxpool.Pool) portsrepo.RosterRepositoryFacade {
	return &PgxRosterRepository{db: db}
}

var _ portsrepo.RosterRepositoryFacade = (*PgxRosterRepository)(nil)

func toModelRoster(d domain.RosterEntry) models.RosterEntry {
	return models.RosterEntry{
		RosterID:    d.RosterID,
		UserID:      d.UserID,
		ShiftDate:   d.ShiftDate,
		ShiftType:   string(d.ShiftType),
		Location:    d.Location,
		Notes:       d.Notes,
		CreatedByID: d.CreatedByID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRoster(m models.RosterEntry) domain.RosterEntry {
	return domain.RosterEntry{
		RosterID:    m.RosterID,
		UserID:      m.UserID,
		ShiftDate:   m.ShiftDate,
		ShiftType:   domain.ShiftType(m.ShiftType),
		Location:    m.Location,
		Notes:       m.Notes,
		CreatedByID: m.CreatedByID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const rosterColumns = `roster_id, user_id, shift_date, shift_type, location, notes, created_by_id, created_at, created_by, last_updated_at, last_updated_by`

func scanRoster(row pgx.Row) (*models.RosterEntry, error) {
	var m models.RosterEntry
	err := row.Scan(
		&m.RosterID,
		&m.UserID,
		&m.ShiftDate,
		&m.ShiftType,
		&m.Location,
		&m.Notes,
		&m.CreatedByID,
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

func collectRosters(rows pgx.Rows) ([]domain.RosterEntry, error) {
	entries := make([]domain.RosterEntry, 0)
	for rows.Next() {
		m, err := scanRoster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		entries = append(entries, toDomainRoster(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating roster rows: %w", err)
	}
	return entries, nil
}

func (r *PgxRosterRepository) FindRosterByID(ctx context.Context, rosterID string) (*domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE roster_id = $1;
	`
	m, err := scanRoster(r.db.QueryRow(ctx, query, rosterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find roster %s: %w", rosterID, err)
	}
	entry := toDomainRoster(*m)
	return &entry, nil
}

func (r *PgxRosterRepository) FindRosterByUserAndDate(ctx context.Context, userID string, shiftDate time.Time) (*domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE user_id = $1 AND shift_date = $2;
	`
	m, err := scanRoster(r.db.QueryRow(ctx, query, userID, shiftDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find roster for user %s on %s: %w", userID, shiftDate.Format("2006-01-02"), err)
	}
	entry := toDomainRoster(*m)
	return &entry, nil
}

func (r *PgxRosterRepository) FindRostersByUser(ctx context.Context, userID string) ([]domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE user_id = $1
		ORDER BY shift_date;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectRosters(rows)
}

func (r *PgxRosterRepository) FindRostersByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE user_id = $1 AND shift_date BETWEEN $2 AND $3
		ORDER BY shift_date;
	`
	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster range for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectRosters(rows)
}

func (r *PgxRosterRepository) FindRostersByDate(ctx context.Context, shiftDate time.Time) ([]domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE shift_date = $1
		ORDER BY user_id;
	`
	rows, err := r.db.Query(ctx, query, shiftDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters on %s: %w", shiftDate.Format("2006-01-02"), err)
	}
	defer rows.Close()
	return collectRosters(rows)
}

func (r *PgxRosterRepository) FindRostersInRange(ctx context.Context, start, end time.Time) ([]domain.RosterEntry, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, user_id;
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster range: %w", err)
	}
	defer rows.Close()
	return collectRosters(rows)
}

func (r *PgxRosterRepository) SaveRoster(ctx context.Context, entry domain.RosterEntry) error {
	m := toModelRoster(entry)
	query := `
		INSERT INTO roster_entries (roster_id, user_id, shift_date, shift_type, location, notes, created_by_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.RosterID,
		m.UserID,
		m.ShiftDate,
		m.ShiftType,
		m.Location,
		m.Notes,
		m.CreatedByID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("roster for user " + m.UserID + " on " + m.ShiftDate.Format("2006-01-02") + " already exists")
		}
		return fmt.Errorf("failed to save roster %s: %w", m.RosterID, err)
	}
	return nil
}

func (r *PgxRosterRepository) UpdateRoster(ctx context.Context, entry domain.RosterEntry) error {
	m := toModelRoster(entry)
	query := `
		UPDATE roster_entries
		SET shift_type = $2, location = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
		WHERE roster_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.RosterID,
		m.ShiftType,
		m.Location,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update roster %s: %w", m.RosterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("roster " + m.RosterID + " not found")
	}
	return nil
}

func (r *PgxRosterRepository) DeleteRoster(ctx context.Context, rosterID string) error {
	query := `DELETE FROM roster_entries WHERE roster_id = $1;`
	tag, err := r.db.Exec(ctx, query, rosterID)
	if err != nil {
		return fmt.Errorf("failed to delete roster %s: %w", rosterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("roster " + rosterID + " not found")
	}
	return nil
}
