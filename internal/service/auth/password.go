package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a login password against a stored hash. The login
// handler depends on this interface so tests can force matches or mismatches
// without paying bcrypt's cost.
type PasswordVerifier interface {
	// Compare returns nil when the plaintext password matches the hash, or
	// an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier is the production PasswordVerifier, backed by bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements PasswordVerifier.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
