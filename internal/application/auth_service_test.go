package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteboard/voteboard/internal/application"
	"github.com/voteboard/voteboard/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) *application.AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return application.NewAuthService(users, jwt, nil, nil, false)
}

func TestAuthService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "supersecret", u.Password, "password must be stored hashed")
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "supersecret"))
	assert.False(t, u.CreatedAt.IsZero())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "othersecret")
	require.ErrorIs(t, err, application.ErrEmailTaken)
	assert.Equal(t, 1, users.count(), "failed registration must not mutate the store")
}

func TestAuthService_Login(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	token, exp, err := svc.Login(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, _, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	unknownEmailErr := err
	require.ErrorIs(t, err, application.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrongpassword")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr, err)
}

func TestAuthService_GetUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = svc.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
