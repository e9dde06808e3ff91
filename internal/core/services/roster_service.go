package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// rosterService plans shift entries keyed by (user, date).
type rosterService struct {
	rosterRepo portsrepo.RosterRepositoryFacade
	userRepo   portsrepo.UserReader
	clock      Clock
}

// NewRosterService creates the roster planner.
func NewRosterService(rosterRepo portsrepo.RosterRepositoryFacade, userRepo portsrepo.UserReader, clock Clock) portssvc.RosterSvcFacade {
	return &rosterService{
		rosterRepo: rosterRepo,
		userRepo:   userRepo,
		clock:      clock,
	}
}

var _ portssvc.RosterSvcFacade = (*rosterService)(nil)

func (s *rosterService) Upsert(ctx context.Context, req dto.UpsertRosterRequest, creatorID string) (*domain.RosterEntry, error) {
	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", req.UserID, err)
	}
	creator, err := s.userRepo.FindUserByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("resolving creator %s: %w", creatorID, err)
	}

	shiftDate, err := dto.ParseDateOnly(req.ShiftDate)
	if err != nil {
		return nil, err
	}
	shiftDate = DateOf(shiftDate)

	entry, err := s.rosterRepo.FindRosterByUserAndDate(ctx, user.UserID, shiftDate)
	if err != nil {
		return nil, fmt.Errorf("loading roster for user %s on %s: %w", user.UserID, req.ShiftDate, err)
	}
	if entry == nil {
		created, err := s.create(ctx, user.UserID, shiftDate, req, creator.UserID)
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return created, err
		}
		// Lost an insert race on the (user, shift_date) unique constraint;
		// fall through to the update path against the winner's row.
		entry, err = s.rosterRepo.FindRosterByUserAndDate(ctx, user.UserID, shiftDate)
		if err != nil {
			return nil, fmt.Errorf("reloading roster for user %s on %s: %w", user.UserID, req.ShiftDate, err)
		}
		if entry == nil {
			return nil, fmt.Errorf("roster entry for user %s on %s vanished after conflict", user.UserID, req.ShiftDate)
		}
	}

	// Update in place; the original creator reference stays untouched.
	entry.ShiftType = domain.ShiftType(req.ShiftType)
	entry.Location = req.Location
	entry.Notes = req.Notes
	entry.LastUpdatedAt = s.clock.Now()
	entry.LastUpdatedBy = creator.UserID

	if err := s.rosterRepo.UpdateRoster(ctx, *entry); err != nil {
		return nil, fmt.Errorf("updating roster %s: %w", entry.RosterID, err)
	}
	return entry, nil
}

func (s *rosterService) create(ctx context.Context, userID string, shiftDate time.Time, req dto.UpsertRosterRequest, creatorID string) (*domain.RosterEntry, error) {
	now := s.clock.Now()
	entry := domain.RosterEntry{
		RosterID:    uuid.NewString(),
		UserID:      userID,
		ShiftDate:   shiftDate,
		ShiftType:   domain.ShiftType(req.ShiftType),
		Location:    req.Location,
		Notes:       req.Notes,
		CreatedByID: creatorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.rosterRepo.SaveRoster(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *rosterService) Delete(ctx context.Context, rosterID string) error {
	return s.rosterRepo.DeleteRoster(ctx, rosterID)
}

func (s *rosterService) ListForUser(ctx context.Context, userID string) ([]domain.RosterEntry, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.rosterRepo.FindRostersByUser(ctx, user.UserID)
}

func (s *rosterService) ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.RosterEntry, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.rosterRepo.FindRostersByUserInRange(ctx, user.UserID, DateOf(start), DateOf(end))
}

func (s *rosterService) ListForDate(ctx context.Context, shiftDate time.Time) ([]domain.RosterEntry, error) {
	return s.rosterRepo.FindRostersByDate(ctx, DateOf(shiftDate))
}

func (s *rosterService) ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.RosterEntry, error) {
	return s.rosterRepo.FindRostersInRange(ctx, DateOf(start), DateOf(end))
}
