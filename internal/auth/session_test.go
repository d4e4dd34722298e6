package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := IssueSessionToken("secret", "profile-123", "mentor", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "profile-123", claims.ProfileID)
	assert.Equal(t, "mentor", claims.Kind)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := IssueSessionToken("secret", "profile-123", "mentor", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := IssueSessionToken("secret", "profile-123", "mentor", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionTokenMalformed(t *testing.T) {
	_, err := ParseSessionToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}
