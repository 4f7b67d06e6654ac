package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/internal/common"
)

var testSecret = []byte("test-secret")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("user-42", testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-42", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-42", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("definitely.not.a.jwt", testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
