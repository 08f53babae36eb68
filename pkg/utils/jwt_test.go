package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := CreateToken(secret, userID, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := CreateToken([]byte("right-secret"), uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("wrong-secret"), token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := CreateToken(secret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.Error(t, err)
}
