package usecase

import (
	"context"
	"errors"
	"fmt"

	authdomain "todo-backend/internal/auth/domain"
	authdto "todo-backend/internal/auth/dto"
	"todo-backend/internal/auth/repository"
	"todo-backend/pkg/password"

	"github.com/rs/zerolog"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	log      zerolog.Logger

	// dummyDigest is compared against on logins for unknown emails so both
	// failure paths pay for one bcrypt comparison.
	dummyDigest string
}

// NewAuthUsecase creates a new instance of authUsecase. It fails when the
// hasher cannot produce a digest.
func NewAuthUsecase(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenService, log zerolog.Logger) (AuthUsecase, error) {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}
	return &authUsecase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		log:         log.With().Str("component", "auth").Logger(),
		dummyDigest: dummy,
	}, nil
}

func (u *authUsecase) Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.TokenResponse, error) {
	if len(req.Password) > password.MaxLength {
		return nil, authdomain.ErrPasswordTooLong
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, authdomain.ErrDuplicateIdentity) {
			u.log.Info().Msg("signup rejected: email already registered")
		}
		return nil, err
	}

	u.log.Info().Uint("user_id", user.ID).Msg("user signed up")
	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// Passwords longer than bcrypt reads can never have been stored.
	if user == nil || len(req.Password) > password.MaxLength {
		u.hasher.Verify(req.Password, u.dummyDigest)
		u.log.Info().Msg("login rejected")
		return nil, authdomain.ErrInvalidCredentials
	}

	if !u.hasher.Verify(req.Password, user.HashedPassword) {
		u.log.Info().Msg("login rejected")
		return nil, authdomain.ErrInvalidCredentials
	}

	u.log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return u.issue(user)
}

func (u *authUsecase) Resolve(ctx context.Context, token string) (*authdomain.User, error) {
	email, err := u.tokens.Verify(token)
	if err != nil {
		return nil, authdomain.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUnauthenticated
	}

	return user, nil
}

func (u *authUsecase) issue(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, _, err := u.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   authdto.TokenTypeBearer,
	}, nil
}
