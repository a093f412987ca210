package sign

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Digest builds the canonical signing string — the fields joined with ':' in
// the exact order given, then the shared secret appended with no delimiter —
// and returns its SHA-256 digest as lowercase hex.
//
// Field order and the exact string formatting of numeric values are part of
// each provider's contract: both sides compute this independently and compare
// bit-for-bit, so callers must pass values formatted exactly as they appear
// in the request body.
func Digest(fields []string, secret string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, ":") + secret))
	return hex.EncodeToString(sum[:])
}
