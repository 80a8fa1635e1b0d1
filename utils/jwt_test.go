package utils

import (
	"testing"
	"time"

	"clinic-portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("sess-1", "patient-1", "Asha", "patient")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "patient-1", claims.UserID)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "patient", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	claims := Claims{SessionID: "sess-1"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := Claims{SessionID: "sess-1"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestTokenExpiryDefaults(t *testing.T) {
	old := config.AppConfig
	defer func() { config.AppConfig = old }()

	config.AppConfig = nil
	assert.Equal(t, 24*time.Hour, TokenExpiry())

	config.AppConfig = &config.Config{JWTExpiry: "2h"}
	assert.Equal(t, 2*time.Hour, TokenExpiry())

	config.AppConfig = &config.Config{JWTExpiry: "garbage"}
	assert.Equal(t, 24*time.Hour, TokenExpiry())
}
