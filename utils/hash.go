package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// CreateHash hashes a plaintext password with bcrypt
func CreateHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
