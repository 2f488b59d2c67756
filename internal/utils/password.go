package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns a salted sha256 digest, hex(salt)+hex(hash).
// Passwords are never stored or serialized in the clear.
func HashPassword(password string) string {
	salt := make([]byte, 8)
	rand.Read(salt)

	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	hash := h.Sum(nil)

	return hex.EncodeToString(salt) + hex.EncodeToString(hash)
}
