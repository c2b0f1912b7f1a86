package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// apiKeyPrefix makes raw keys recognizable in agent configs and log
// redaction rules without revealing anything about their value.
const apiKeyPrefix = "cnd_"

// GenerateAPIKey returns a new random API key and its SHA-256 hex digest.
// Only the digest is stored; the raw key is shown once to the caller.
func GenerateAPIKey() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("auth: generating api key: %w", err)
	}
	raw = apiKeyPrefix + hex.EncodeToString(b)
	return raw, HashAPIKey(raw), nil
}

// HashAPIKey returns the SHA-256 hex digest of a raw key. The digest is
// deterministic so registration can look keys up by hash.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
