package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	SetSecret("test_secret")

	token, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseTokenTampered(t *testing.T) {
	SetSecret("test_secret")

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	// Corrupt a character in the middle of the signature segment.
	i := len(token) - 10
	flipped := byte('A')
	if token[i] == flipped {
		flipped = 'B'
	}
	tampered := token[:i] + string(flipped) + token[i+1:]

	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	SetSecret("first_secret")
	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	SetSecret("second_secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	SetSecret("test_secret")

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
