package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/pkg/apperrors"
)

func testUser() *models.AppUser {
	return &models.AppUser{
		ID:       7,
		Email:    "staff@collegium.edu",
		Username: "staff",
		Role:     models.RoleAdmin,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegium-test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "staff@collegium.edu", claims.Email)
	assert.Equal(t, "staff", claims.Username)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
	assert.Equal(t, "collegium-test", claims.Issuer)
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "key-one", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "key-two", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: -time.Minute})

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"standard header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lower-case scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
