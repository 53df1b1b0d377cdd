// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Email is unique and stored lowercase;
// PasswordHash is a bcrypt hash and must never leave the persistence boundary
// in any outward-facing view.
type User struct {
	ID              uuid.UUID  // The unique identifier for the user.
	Username        string     // Display name chosen at registration.
	Email           string     // Login identifier, unique and case-normalized.
	PasswordHash    string     // bcrypt hash of the password. Never serialized outward.
	Bio             string     // Optional free-form profile text.
	Image           string     // Optional avatar URL.
	EmailVerifiedAt *time.Time // Set once when the verification token is consumed; never unset.
	CreatedBy       string     // Audit actor that created the record.
	UpdatedBy       string     // Audit actor of the last modification.
	CreatedAt       time.Time  // Timestamp of when this user account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this user's data.
}

// IsEmailVerified reports whether the user has completed email verification.
func (u *User) IsEmailVerified() bool {
	return u.EmailVerifiedAt != nil && !u.EmailVerifiedAt.IsZero()
}
