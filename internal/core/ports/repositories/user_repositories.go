package repositories

import (
	"context"

	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// UserRepository defines persistence operations for operator accounts.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
}
