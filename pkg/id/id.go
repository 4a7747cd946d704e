// Package id generates opaque identifiers for stored artifacts.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns 32 lowercase hex characters from 16 random bytes.
// Attachment storage names are built from it so user-supplied filenames
// never reach the filesystem.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
