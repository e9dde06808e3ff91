package repositories

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// RosterReader defines read operations for roster entries.
type RosterReader interface {
	// FindRosterByID retrieves an entry, apperrors.ErrNotFound when absent.
	FindRosterByID(ctx context.Context, rosterID string) (*domain.RosterEntry, error)

	// FindRosterByUserAndDate retrieves the entry for (user, date);
	// (nil, nil) when no entry exists.
	FindRosterByUserAndDate(ctx context.Context, userID string, shiftDate time.Time) (*domain.RosterEntry, error)

	// FindRostersByUser retrieves all entries for a user ordered by shift date.
	FindRostersByUser(ctx context.Context, userID string) ([]domain.RosterEntry, error)

	// FindRostersByUserInRange retrieves a user's entries with shift dates in
	// [start, end], both ends inclusive.
	FindRostersByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.RosterEntry, error)

	// FindRostersByDate retrieves entries across all users for one date.
	FindRostersByDate(ctx context.Context, shiftDate time.Time) ([]domain.RosterEntry, error)

	// FindRostersInRange retrieves entries across all users with shift dates in
	// [start, end], both ends inclusive.
	FindRostersInRange(ctx context.Context, start, end time.Time) ([]domain.RosterEntry, error)
}

// RosterWriter defines write operations for roster entries.
type RosterWriter interface {
	// SaveRoster inserts a new entry. A unique-constraint violation on
	// (user_id, shift_date) surfaces as apperrors.ErrConflict.
	SaveRoster(ctx context.Context, entry domain.RosterEntry) error

	// UpdateRoster updates an existing entry by ID.
	UpdateRoster(ctx context.Context, entry domain.RosterEntry) error

	// DeleteRoster removes an entry, apperrors.ErrNotFound when absent.
	DeleteRoster(ctx context.Context, rosterID string) error
}

// RosterRepositoryFacade combines all roster repository interfaces.
type RosterRepositoryFacade interface {
	RosterReader
	RosterWriter
}
