package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateInviteToken returns an opaque single-use bearer token for a pending
// membership. Stored as-is: accept matches it by equality inside the
// conditional update, so there is nothing to hash.
func GenerateInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
