package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// Session tokens are 32 random bytes, hex encoded.
const tokenLen = 32

var tokenFormatRegex = regexp.MustCompile(`^[a-f0-9]{64}$`)

// GenerateSessionToken creates a new opaque session token.
func GenerateSessionToken() (string, error) {
	b := make([]byte, tokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidateTokenFormat checks if a token matches the expected format.
// Cheap pre-check before hitting the session store.
func ValidateTokenFormat(token string) bool {
	return tokenFormatRegex.MatchString(token)
}
