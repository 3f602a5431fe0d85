package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"merchant-portal.backend/pkg/jwt"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	userID := uuid.New()
	perms := []string{"merchants:create", "merchants:edit"}

	pair, err := svc.GenerateTokenPair(userID, "op@hub.test", "operator", perms)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "op@hub.test", claims.Email)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, perms, claims.Permissions)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", -time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "op@hub.test", "operator", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := jwt.NewJWTService("secret-a", time.Minute, time.Hour)
	other := jwt.NewJWTService("secret-b", time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "op@hub.test", "operator", nil)
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
