package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVoucherNumber(t *testing.T) {
	assert.Equal(t, "CV-100234-0007", FormatVoucherNumber(CashVoucherPrefix, "100234", 7))
	assert.Equal(t, "CHQ-100234-0001", FormatVoucherNumber(ChequeVoucherPrefix, "100234", 1))

	// Sequences past four digits keep their full width
	assert.Equal(t, "CV-9-12345", FormatVoucherNumber(CashVoucherPrefix, "9", 12345))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "clerk@abic.ph", "staff")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "clerk@abic.ph", claims.Email)
	assert.Equal(t, "staff", claims.Role)
}

func TestJWTRejectsRefreshSecretMismatch(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	refresh, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = other.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "clerk@abic.ph", "staff")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}
