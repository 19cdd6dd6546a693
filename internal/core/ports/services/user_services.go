package services

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// UserService defines operations on operator accounts.
type UserService interface {
	// Authenticate verifies a username/password pair. It returns
	// apperrors.ErrUnauthorized on unknown user or wrong password, without
	// distinguishing the two.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ChangePassword replaces the password of an operator after verifying the
	// current one. A wrong current password returns apperrors.ErrUnauthorized.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
