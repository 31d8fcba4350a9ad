package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex digest of s. Used for résumé content hashes and
// analysis cache keys.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
