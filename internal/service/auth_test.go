package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopher0727/RaidLedger/middleware/jwt"
)

func newAuthService(t *testing.T) (IAuthService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	tm := jwt.NewTokenManager("test-secret", 24, 168)
	return NewAuthService(env.userRepo, tm), env
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, &RegisterRequest{
		Username:      "raider",
		Email:         "raider@raid.test",
		Password:      "password123",
		CharacterName: "Bob",
		HomeServer:    "Chaos",
	})
	require.NoError(t, err)
	assert.Equal(t, "raider", user.UserName)
	assert.Equal(t, "Bob", user.CharacterName)
	assert.NotEqual(t, "password123", user.PasswordHash)

	resp, err := auth.Login(ctx, &LoginRequest{Username: "raider", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "b@raid.test", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Register(ctx, &RegisterRequest{Username: "other", Email: "a@raid.test", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLoginBadCredentials(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &LoginRequest{Username: "raider", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIsUsernameTaken(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	taken, err := auth.IsUsernameTaken(ctx, "raider")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	taken, err = auth.IsUsernameTaken(ctx, "raider")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestChangePassword(t *testing.T) {
	auth, env := newAuthService(t)
	users := NewUserService(env.userRepo)
	ctx := context.Background()

	user, err := auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	err = users.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = users.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &LoginRequest{Username: "raider", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	auth, env := newAuthService(t)
	users := NewUserService(env.userRepo)
	ctx := context.Background()

	user, err := auth.Register(ctx, &RegisterRequest{Username: "raider", Email: "a@raid.test", Password: "password123"})
	require.NoError(t, err)

	name := "Bob the Bold"
	updated, err := users.UpdateProfile(ctx, user.ID, &UpdateProfileRequest{CharacterName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.CharacterName)

	// Untouched fields survive
	assert.Equal(t, "raider", updated.UserName)
}
