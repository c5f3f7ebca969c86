// Package password provides one-way hashing and verification of user
// passwords.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost is the bcrypt work factor. Fixed; stored digests embed their own
// cost so changing it later only affects new hashes.
const cost = 10

// Hash derives a salted bcrypt digest from a plaintext password.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
