package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// SaveUser inserts a new user. A duplicate email fails with
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns the user, excluding soft-deleted accounts.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns the user with the given email, excluding
	// soft-deleted accounts.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser overwrites the mutable fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes the user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}
