package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	require.True(t, CheckPasswordHash("supersecret", hash))
	require.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("supersecret")
	require.NoError(t, err)
	second, err := HashPassword("supersecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
