package services

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// RosterSvcFacade exposes the shift roster operations.
type RosterSvcFacade interface {
	// Upsert creates the entry for (user, shift date) or updates shift type,
	// location and notes in place, preserving the original creator reference.
	Upsert(ctx context.Context, req dto.UpsertRosterRequest, creatorID string) (*domain.RosterEntry, error)

	// Delete removes an entry unconditionally, not-found when absent.
	Delete(ctx context.Context, rosterID string) error

	ListForUser(ctx context.Context, userID string) ([]domain.RosterEntry, error)
	ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.RosterEntry, error)
	ListForDate(ctx context.Context, shiftDate time.Time) ([]domain.RosterEntry, error)
	ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.RosterEntry, error)
}
