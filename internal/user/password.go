package user

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword derives a bcrypt hash over sha256(purpose || password). The
// purpose string (the username here) domain-separates otherwise identical
// passwords; the pre-hash keeps the bcrypt input inside its 72-byte limit.
func hashPassword(purpose, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(purpose, password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(purpose, hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(purpose, password)) == nil
}

func prehash(purpose, password string) []byte {
	sum := sha256.Sum256([]byte(purpose + "\x00" + password))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
