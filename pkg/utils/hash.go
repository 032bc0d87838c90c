package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the trimmed, lower-cased input.
// Used to correlate submissions in logs without writing email addresses.
func HashString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
