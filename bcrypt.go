package marketplace

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades login latency for brute-force resistance. 14 keeps a
// single verification in the hundreds of milliseconds on current hardware.
const bcryptCost = 14

// HashPassword will generate a salted password hash. The salt is randomized
// per call, so hashing the same password twice yields different outputs.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password against
// the stored hash. bcrypt distinguishes a mismatch from an unparsable hash;
// we do not, so callers cannot tell the cases apart.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
