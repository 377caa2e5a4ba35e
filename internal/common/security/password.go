package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hashing time against offline brute-force resistance.
// Tuned for a few hundred accounts, not a public identity provider.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches hash. A malformed
// stored hash is an error, not a mismatch.
func CheckPasswordHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
