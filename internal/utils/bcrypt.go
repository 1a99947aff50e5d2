package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the salt rounds existing admin hashes were created with
const DefaultCost = 10

// MaxPasswordBytes is the most bcrypt reads of a password. Longer input is
// cut to this length before hashing and comparing, so existing hashes of
// long passwords keep verifying.
const MaxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt at DefaultCost
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

// HashPasswordWithCost hashes a plaintext password with an explicit bcrypt cost.
// Costs outside bcrypt's range fall back to DefaultCost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches hash.
// A malformed hash never matches.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
