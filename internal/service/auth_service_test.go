package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/fitness-tracker/internal/config"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/events"
)

type fakeUserRepo struct {
	users     map[int64]*domain.User
	seq       int64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	user.ID = r.seq
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthService(users *fakeUserRepo) *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:  "test-secret",
		BcryptCost: bcrypt.MinCost,
	}}
	return NewAuthService(cfg, users, events.NewInMemoryDispatcher())
}

func TestSignupAndAuthenticate(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "correct-pass"})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct-pass", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "alice", "correct-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	byEmail, err := svc.Authenticate(ctx, "alice@example.com", "correct-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "correct-pass"})
	require.NoError(t, err)

	_, wrongPass := svc.Authenticate(ctx, "alice", "wrong")
	_, unknownUser := svc.Authenticate(ctx, "nobody", "whatever")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser, "wrong password and unknown user must look identical")
}

func TestSignupRejectsDuplicates(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Username: "other", Email: "alice@example.com", Password: "pw"})
	assert.Error(t, err, "duplicate email")

	_, err = svc.Signup(ctx, SignupInput{Username: "alice", Email: "other@example.com", Password: "pw"})
	assert.Error(t, err, "duplicate username")
}

func TestAuthenticateRejectsInactiveAccount(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "correct-pass"})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, users.Update(ctx, user))

	_, err = svc.Authenticate(ctx, "alice", "correct-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupMapsUniqueViolationToConflict(t *testing.T) {
	// Uniqueness reads race with concurrent signups; the constraint error
	// from the insert must still surface as a conflict, not a 500.
	users := newFakeUserRepo()
	users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	svc := newTestAuthService(users)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	assertDomainCode(t, err, "CONFLICT")
}

func TestIssueTokenResolvesBack(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	token, expiresAt, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.Nil(t, expiresAt, "default configuration issues unbounded tokens")

	userID, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}
