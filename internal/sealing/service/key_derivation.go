package service

import (
	"crypto/sha256"
)

// DeriveKey computes the AES-256 encryption key for one operation as
// SHA-256(masterKey). The result is never cached; callers zero it after use.
func DeriveKey(masterKey []byte) []byte {
	sum := sha256.Sum256(masterKey)
	return sum[:]
}
