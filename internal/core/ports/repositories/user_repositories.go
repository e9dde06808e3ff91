package repositories

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by ID, apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by email, apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsersByRoleAndActive retrieves users with the given role and active flag.
	FindUsersByRoleAndActive(ctx context.Context, role domain.Role, active bool) ([]domain.User, error)

	// FindActiveUsers retrieves all active users.
	FindActiveUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// SetUserActive flips a user's active flag.
	SetUserActive(ctx context.Context, userID string, active bool, updatedAt time.Time, updatedBy string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
