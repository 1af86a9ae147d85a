package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/config"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/events"
	"github.com/spec-kit/fitness-tracker/internal/repository"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// ErrInvalidCredentials is returned for unknown identifiers and wrong
// passwords alike, so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		dispatcher: dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignupInput carries a new account request. Role flags are deliberately not
// client-controlled; new accounts are active non-admins.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// Signup creates a new account after uniqueness checks on email and username.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("user with the email already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewConflict("user with the username already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      false,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The reads above race with concurrent signups; the UNIQUE
		// constraints are the authority. 23505 is unique_violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflict("user with the username or email already exists", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
			Username: user.Username,
			Email:    user.Email,
		}))
	}
	return user, nil
}

// Authenticate resolves an identity from an identifier (username or email)
// and password. The store lookup is read-only.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)

	user, err := s.users.GetByUsername(ctx, identifier)
	if err == pgx.ErrNoRows {
		user, err = s.users.GetByEmail(ctx, identifier)
	}
	if err == pgx.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	// Deactivated accounts fail the same way as bad credentials.
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an access token for the user.
func (s *AuthService) IssueToken(user *domain.User) (string, *time.Time, error) {
	return s.tokenMgr.GenerateToken(user.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
