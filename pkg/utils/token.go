package utils

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand"
)

// tokenBytes is 16 bytes, giving a 128-bit token rendered as 32 hex chars.
const tokenBytes = 16

// GeneratePublicToken returns a 128-bit random token, hex-encoded. The
// crypto source is the primary path; the math/rand fallback is a last
// resort degradation for environments where crypto/rand fails, never the
// normal path.
func GeneratePublicToken() string {
	buf := make([]byte, tokenBytes)
	if _, err := cryptorand.Read(buf); err != nil {
		for i := range buf {
			buf[i] = byte(rand.Intn(256))
		}
	}
	return hex.EncodeToString(buf)
}
