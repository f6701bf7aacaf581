package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAndParseToken(t *testing.T) {
	aToken, rToken, err := GenToken(42, "tester")
	require.NoError(t, err)
	require.NotEmpty(t, aToken)
	require.NotEmpty(t, rToken)

	mc, err := ParseToken(aToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), mc.UserID)
	assert.Equal(t, "tester", mc.Username)

	userID, err := ParseRefreshToken(rToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseTokenInvalid(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// Refresh Token 不能当 Access Token 用反过来也一样
	_, err = ParseRefreshToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
