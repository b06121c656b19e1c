package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", 24*time.Hour)

	token, err := svc.GenerateToken(42, "user@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", -time.Minute)

	token, err := svc.GenerateToken(1, "a@b.c", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	svc := New("secret-one", time.Hour)
	other := New("secret-two", time.Hour)

	token, err := svc.GenerateToken(1, "a@b.c", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	svc := New("secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
