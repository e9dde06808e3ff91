package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// userService is the identity lookup collaborator. The workforce core resolves
// user references through it and never copies mutable user fields into its own
// records.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	notifier portssvc.Notifier
	clock    Clock
}

// NewUserService creates the identity lookup service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, notifier portssvc.Notifier, clock Clock) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		notifier: notifier,
		clock:    clock,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolving user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsersByRoleAndActive(ctx context.Context, role domain.Role, active bool) ([]domain.User, error) {
	return s.userRepo.FindUsersByRoleAndActive(ctx, role, active)
}

func (s *userService) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindActiveUsers(ctx)
}

func (s *userService) Deactivate(ctx context.Context, userID, actorID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolving user %s: %w", userID, err)
	}

	if err := s.userRepo.SetUserActive(ctx, user.UserID, false, s.clock.Now(), actorID); err != nil {
		return fmt.Errorf("deactivating user %s: %w", user.UserID, err)
	}

	// Best-effort: the deactivation stands even if the notice fails.
	if err := s.notifier.SystemNotify(ctx, actorID, user.UserID,
		"Account deactivated", "Your account has been deactivated."); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to notify user of deactivation",
			slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}
	return nil
}
