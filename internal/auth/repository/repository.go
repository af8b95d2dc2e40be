package repository

import (
	"context"

	authdomain "todo-backend/internal/auth/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts a new user and fills in its ID. Returns
	// domain.ErrDuplicateIdentity when the email already exists.
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
}
