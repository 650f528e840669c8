package repository

import (
	"context"

	"staffhub/models"
)

// UserRepository defines the interface for credential store operations.
type UserRepository interface {
	// CreateUser assigns the id and timestamps and persists the user.
	// Returns ErrDuplicateKey when username or email already exist.
	CreateUser(ctx context.Context, user *models.User) error
	// FindByUsernameOrEmail returns the first user matching either field.
	// Returns ErrNotFound when no user matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}
