package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/auth"
	"github.com/ozank/collegium/internal/pkg/results"
)

func userService(t *testing.T) *UserService {
	db := openTestDB(t)
	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegium-test",
	})
	return NewUserService(repositories.NewUserRepository(db, zerolog.Nop()), jwt, zerolog.Nop())
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     "staff@collegium.edu",
		Username:  "staff",
		Password:  "Sup3rS3cret!",
		FirstName: "Staff",
	}
}

func TestRegister(t *testing.T) {
	svc := userService(t)

	user, op := svc.Register(context.Background(), registerRequest())
	require.True(t, op.IsSuccess())

	assert.Equal(t, models.RoleUser, user.Role, "registration always yields the base role")
	assert.NotEmpty(t, user.SecurityStamp)
	assert.NotEqual(t, "Sup3rS3cret!", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "Sup3rS3cret!"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := userService(t)
	ctx := context.Background()

	_, op := svc.Register(ctx, registerRequest())
	require.True(t, op.IsSuccess())

	req := registerRequest()
	req.Username = "other"
	_, op = svc.Register(ctx, req)
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeAccountExists, op.FirstCode())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := userService(t)
	ctx := context.Background()

	_, op := svc.Register(ctx, registerRequest())
	require.True(t, op.IsSuccess())

	// The email pre-check passes; the unique index on the username is
	// what rejects the insert.
	req := registerRequest()
	req.Email = "second@collegium.edu"
	_, op = svc.Register(ctx, req)
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeAccountExists, op.FirstCode())
}

func TestLogin(t *testing.T) {
	svc := userService(t)
	ctx := context.Background()

	_, op := svc.Register(ctx, registerRequest())
	require.True(t, op.IsSuccess())

	token, op := svc.Login(ctx, dto.LoginRequest{Email: "staff@collegium.edu", Password: "Sup3rS3cret!"})
	require.True(t, op.IsSuccess())
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "staff", token.Username)
	assert.Equal(t, 3600, token.ExpiresIn)

	byName, op := svc.Login(ctx, dto.LoginRequest{Username: "staff", Password: "Sup3rS3cret!"})
	require.True(t, op.IsSuccess())
	assert.NotEmpty(t, byName.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := userService(t)
	ctx := context.Background()

	_, op := svc.Register(ctx, registerRequest())
	require.True(t, op.IsSuccess())

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Email: "staff@collegium.edu", Password: "nope"}},
		{"unknown account", dto.LoginRequest{Email: "ghost@collegium.edu", Password: "Sup3rS3cret!"}},
		{"no identifier", dto.LoginRequest{Password: "Sup3rS3cret!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, op := svc.Login(ctx, tt.req)
			assert.True(t, op.IsFailure())
			assert.Equal(t, results.CodeInvalidCredentials, op.FirstCode())
		})
	}
}

func TestRoles(t *testing.T) {
	svc := userService(t)
	ctx := context.Background()

	user, op := svc.Register(ctx, registerRequest())
	require.True(t, op.IsSuccess())

	roles, op := svc.Roles(ctx, user.ID)
	require.True(t, op.IsSuccess())
	assert.Equal(t, []string{string(models.RoleUser)}, roles.Roles)

	_, op = svc.Roles(ctx, 4242)
	assert.Equal(t, results.CodeNotFound, op.FirstCode())
}
