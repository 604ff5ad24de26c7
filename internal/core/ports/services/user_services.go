package services

import (
	"context"

	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/SscSPs/finance_tracker_app/internal/dto"
)

// UserSvcFacade defines the user management operations.
type UserSvcFacade interface {
	// CreateUser registers a new credential-based user. A duplicate
	// email fails with apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID returns the user or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies email+password credentials and returns the
	// user, or apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a Google identity to a local
	// user, provisioning one (with an empty password hash) on first
	// sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUser applies a partial update; a present password is
	// re-hashed before storage.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes the user.
	DeleteUser(ctx context.Context, userID string) error
}
