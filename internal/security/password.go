package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for stored credentials.
const hashCost = 10

// HashPassword hashes a plaintext password with bcrypt. The salt is generated
// by bcrypt and embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// A mismatch is not an error; any other bcrypt failure is.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
