package token

import (
	"crypto/rand"
	"encoding/base64"
)

const DefaultByteLength = 18

// New returns a URL-safe random token. byteLength bytes are read from
// crypto/rand and base64url-encoded without padding, so the result is
// safe to embed in a path segment. Values below 1 fall back to the
// default length rather than producing an empty token.
func New(byteLength int) string {
	if byteLength < 1 {
		byteLength = DefaultByteLength
	}
	buf := make([]byte, byteLength)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
