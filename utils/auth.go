// utils/auth.go
package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the tooling seeds users with.
const bcryptCost = 10

// HashPassword hashes a plain password for storage. Passwords are always
// hashed before they reach a repository.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plain password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
