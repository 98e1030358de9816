package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, CheckPassword("segredo123", hash))
	assert.False(t, CheckPassword("errada", hash))
	assert.False(t, CheckPassword("segredo123", "not-a-hash"))
}

func TestGenerateShareableLink(t *testing.T) {
	first, err := GenerateShareableLink()
	require.NoError(t, err)
	second, err := GenerateShareableLink()
	require.NoError(t, err)

	// 8 random bytes base64url-encode to 11 characters.
	assert.Len(t, first, 11)
	assert.NotEqual(t, first, second)
}

func TestGenerateRandomStringLength(t *testing.T) {
	s, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 43)
}
