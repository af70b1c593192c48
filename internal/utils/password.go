package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted for admin accounts.
const MinPasswordLength = 6

// PasswordCost is the bcrypt cost used by HashPassword. Tests lower it.
var PasswordCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
