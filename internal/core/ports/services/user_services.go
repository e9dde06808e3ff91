package services

import (
	"context"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// UserSvcFacade is the identity lookup collaborator: it resolves user
// references for the workforce core and owns the deactivation path. Core
// components never mutate role or active state themselves.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsersByRoleAndActive(ctx context.Context, role domain.Role, active bool) ([]domain.User, error)
	ListActiveUsers(ctx context.Context) ([]domain.User, error)

	// Deactivate clears the user's active flag and notifies them best-effort.
	Deactivate(ctx context.Context, userID, actorID string) error
}
