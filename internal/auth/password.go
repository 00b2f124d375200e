// Package auth implements credential verification and session token
// issuance for admin accounts.
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for password hashing. Verification uses the
// cost embedded in the stored hash, so changing this only affects new hashes.
const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
