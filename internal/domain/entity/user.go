// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate against the store.
// The password hash never leaves the service layer.
type User struct {
	ID                uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email             string     // The email as entered at registration.
	NormalizedEmail   string     // Upper-cased, trimmed email used for uniqueness and lookup.
	PasswordHash      string     // bcrypt hash of the password.
	Name              string     // Display name.
	BirthDate         *time.Time // Optional date of birth.
	PhotoRef          string     // Image store reference of the profile photo, empty when unset.
	EmailConfirmed    bool       // Whether the email address has been confirmed.
	LockoutEnabled    bool       // Whether failed attempts can lock this account.
	LockoutEnd        *time.Time // Lock expiry; the account is locked while this is in the future.
	AccessFailedCount int        // Consecutive failed sign-in attempts since the last success.
	Roles             Roles      // Role names held by the user, loaded on demand.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeEmail returns the canonical lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

// IsLockedOut reports whether sign-in is currently blocked for the user.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnabled && u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// RecordFailedAttempt increments the failure counter and starts a lockout once
// maxAttempts is reached. It reports whether a lockout was started.
func (u *User) RecordFailedAttempt(now time.Time, maxAttempts int, lockout time.Duration) bool {
	u.AccessFailedCount++
	if !u.LockoutEnabled || maxAttempts <= 0 || u.AccessFailedCount < maxAttempts {
		return false
	}

	end := now.Add(lockout)
	u.LockoutEnd = &end
	u.AccessFailedCount = 0

	return true
}

// ResetFailedAttempts clears the failure counter and any expired lockout.
// It reports whether anything changed.
func (u *User) ResetFailedAttempts() bool {
	if u.AccessFailedCount == 0 && u.LockoutEnd == nil {
		return false
	}

	u.AccessFailedCount = 0
	u.LockoutEnd = nil

	return true
}
