package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"calckit/internal/domain"
)

// Fingerprint returns a short hex fingerprint of one calculation.
//
// It hashes the slug and the normalised inputs with BLAKE2b-256 and
// truncates to 10 bytes (20 hex chars). Inputs that differ only in key order,
// surrounding whitespace or blank values share a fingerprint.
func Fingerprint(slug domain.Slug, in domain.Inputs) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(slug))
	h.Write([]byte{0})
	h.Write([]byte(in.Normalized()))
	return hex.EncodeToString(h.Sum(nil)[:10])
}

// ETag returns a strong entity tag for body, quoted as HTTP requires.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
