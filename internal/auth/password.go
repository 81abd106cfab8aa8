package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost deliberately slows brute-force attempts; bcrypt salts every
// digest, so identical passwords never hash to the same value.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
