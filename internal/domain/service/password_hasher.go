// Package service declares the ports the use cases depend on. Implementations live under internal/infra.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrWeakCredential describing the first unmet rule.
	ValidatePasswordStrength(password string) error
}
