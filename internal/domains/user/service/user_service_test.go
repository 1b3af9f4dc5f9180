package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ander1code/cleanblog/internal/domains/user"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return user.ErrUsernameAlreadyExists
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type fakeDenylist struct {
	entries map[string]time.Duration
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{entries: make(map[string]time.Duration)}
}

func (f *fakeDenylist) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	_, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte("true"), dest)
}

func (f *fakeDenylist) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	f.entries[key] = ttl
	return nil
}

func (f *fakeDenylist) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeDenylist) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeDenylist) Ping(_ context.Context) error { return nil }

func newLoginFixture(t *testing.T) (user.Service, *fakeDenylist, *jwt.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byUsername: map[string]*user.User{
		"walter": {ID: uuid.New(), Username: "walter", PasswordHash: string(hash)},
	}}
	denylist := newFakeDenylist()
	tokens := jwt.NewManager("test-secret", 1)

	return NewUserService(repo, tokens, denylist), denylist, tokens
}

func TestLoginSuccess(t *testing.T) {
	svc, _, tokens := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "walter",
		Password: "letmein",
	})
	require.NoError(t, err)

	assert.Equal(t, "walter", resp.User.Username)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "walter", claims.Username)
	assert.NotEmpty(t, claims.SessionID)
}

func TestLoginIssuesFreshSessionPerLogin(t *testing.T) {
	svc, _, tokens := newLoginFixture(t)
	req := user.LoginRequest{Username: "walter", Password: "letmein"}

	first, err := svc.Login(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), req)
	require.NoError(t, err)

	firstClaims, err := tokens.ValidateToken(first.Token)
	require.NoError(t, err)
	secondClaims, err := tokens.ValidateToken(second.Token)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.SessionID, secondClaims.SessionID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newLoginFixture(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "walter",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginDoesNotRevealUnknownUsername(t *testing.T) {
	svc, _, _ := newLoginFixture(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "nobody",
		Password: "letmein",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginValidatesCredentialShape(t *testing.T) {
	svc, _, _ := newLoginFixture(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "walter white",
		Password: "letmein",
	})
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Username cannot contain space.", fieldErrs["username"].Error())
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	svc, _, _ := newLoginFixture(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{})
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Username is empty.", fieldErrs["username"].Error())
	assert.Equal(t, "Password is empty.", fieldErrs["password"].Error())
}

func TestLogoutDenylistsSessionUntilExpiry(t *testing.T) {
	svc, denylist, _ := newLoginFixture(t)

	sessionID := uuid.New().String()
	err := svc.Logout(context.Background(), sessionID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	ttl, ok := denylist.entries[middleware.DenylistKey(sessionID)]
	require.True(t, ok)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestLogoutSkipsExpiredToken(t *testing.T) {
	svc, denylist, _ := newLoginFixture(t)

	err := svc.Logout(context.Background(), uuid.New().String(), time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, denylist.entries)
}
