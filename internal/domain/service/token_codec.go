// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is the single error every token verification failure
// collapses into: malformed input, signature mismatch and expiry are
// deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// TokenPurpose names a single-use verification token family. Each purpose has
// its own signing secret and lifetime.
type TokenPurpose string

const (
	// PurposeEmailVerification gates the email confirmation flow.
	PurposeEmailVerification TokenPurpose = "email-verification"
	// PurposePasswordReset gates the forgot/reset-password flow.
	PurposePasswordReset TokenPurpose = "password-reset"
)

// AccessClaims is the decoded payload of an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// RefreshClaims is the decoded payload of a refresh token. Hash must match the
// session row's current rotating hash for the token to be honored.
type RefreshClaims struct {
	SessionID uuid.UUID
	Hash      string
}

// VerificationClaims is the decoded payload of a single-use verification token.
type VerificationClaims struct {
	UserID uuid.UUID
}

// TokenCodec signs and verifies compact, expiring, tamper-evident tokens.
// Signing must use a MAC or signature scheme, never a reversible cipher;
// verification is stateless and returns ErrInvalidToken on any failure.
type TokenCodec interface {
	// SignAccessToken issues an access token carrying the user and session IDs,
	// returning the token together with its absolute expiry.
	SignAccessToken(userID, sessionID uuid.UUID) (token string, expiresAt time.Time, err error)

	// SignRefreshToken issues a refresh token bound to a session's current hash.
	SignRefreshToken(sessionID uuid.UUID, hash string) (string, error)

	// SignVerificationToken issues a single-use token under the purpose's secret.
	SignVerificationToken(purpose TokenPurpose, userID uuid.UUID) (string, error)

	// VerifyAccessToken validates an access token and returns its claims.
	VerifyAccessToken(token string) (*AccessClaims, error)

	// VerifyRefreshToken validates a refresh token and returns its claims.
	VerifyRefreshToken(token string) (*RefreshClaims, error)

	// VerifyVerificationToken validates a verification token under the
	// purpose's secret and returns its claims.
	VerifyVerificationToken(purpose TokenPurpose, token string) (*VerificationClaims, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// VerificationTokenTTL returns the configured lifetime for the purpose's
	// tokens; the matching cache entry uses the same TTL.
	VerificationTokenTTL(purpose TokenPurpose) time.Duration
}
