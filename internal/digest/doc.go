// Package digest computes short content fingerprints.
//
// Contents
//
//   - Calculation fingerprints over a slug and its normalised inputs, used
//     to de-duplicate history entries (Fingerprint)
//   - Strong HTTP entity tags for rendered responses (ETag)
//
// Both hash with BLAKE2b-256 from golang.org/x/crypto.
package digest
