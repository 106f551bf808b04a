package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost matches the source system's bcrypt work factor.
const DefaultHashCost = 10

// HashPassword derives a one-way salted bcrypt hash of password at the given
// work factor. bcrypt embeds the salt and cost in the output, so the hash is
// self-describing and never equals the plaintext.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
func ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// HashCost extracts the work factor embedded in a bcrypt hash.
func HashCost(hashedPassword string) (int, error) {
	return bcrypt.Cost([]byte(hashedPassword))
}
