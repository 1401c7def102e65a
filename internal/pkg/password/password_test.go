package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("Secret1!")
	require.NoError(t, err)
	second, err := Hash("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry its own salt")
	assert.NotContains(t, first, "Secret1!")
}

func TestMatches(t *testing.T) {
	hash, err := Hash("Secret1!")
	require.NoError(t, err)

	assert.True(t, Matches("Secret1!", hash))
	assert.False(t, Matches("wrong", hash))
	assert.False(t, Matches("", hash))
	assert.False(t, Matches("Secret1!", "not-a-bcrypt-hash"))
}
