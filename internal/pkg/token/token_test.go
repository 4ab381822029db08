package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestNewIsURLSafeAndUnpadded(t *testing.T) {
	for _, byteLength := range []int{1, 16, 18, 32} {
		tok := New(byteLength)
		require.Regexp(t, urlSafe, tok)
		require.NotContains(t, tok, "=")
		// base64 without padding: ceil(n*4/3) characters
		require.Equal(t, (byteLength*8+5)/6, len(tok))
	}
}

func TestNewDefaultsLength(t *testing.T) {
	require.Equal(t, 24, len(New(0)))
	require.Equal(t, 24, len(New(-1)))
}

func TestNewTokensAreDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok := New(DefaultByteLength)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
