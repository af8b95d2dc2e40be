package usecase

import (
	"context"
	"time"

	authdomain "todo-backend/internal/auth/domain"
	authdto "todo-backend/internal/auth/dto"
)

// AuthUsecase turns credentials into tokens and tokens back into users.
type AuthUsecase interface {
	// Signup registers a new user and returns a token for it.
	Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.TokenResponse, error)

	// Login checks the email/password pair and returns a fresh token.
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Resolve verifies a bearer token and loads the user it was issued to.
	Resolve(ctx context.Context, token string) (*authdomain.User, error)
}

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenService is satisfied by *token.Service.
type TokenService interface {
	Issue(subject string) (string, time.Time, error)
	Verify(token string) (string, error)
}
