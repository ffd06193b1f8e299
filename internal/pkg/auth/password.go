package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for all stored credentials.
const BcryptCost = 12

// HashPassword hashes a plaintext password with a per-call random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against its stored hash.
// Returns false on any mismatch, never an error.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
