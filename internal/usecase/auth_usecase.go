// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=2"`
}

// RefreshTokenInput carries the refresh token presented for rotation.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ResetPasswordInput carries a reset token together with the new password.
type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Output DTOs ---

// TokenBundle is the token pair issued by sign-in, registration and refresh.
// TokenExpires is the access token's absolute expiry in Unix milliseconds.
type TokenBundle struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenExpires int64  `json:"tokenExpires"`
}

// SignInOutput returns the token bundle plus the public profile view.
// It never includes the password hash.
type SignInOutput struct {
	UserID          uuid.UUID `json:"userId"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio,omitempty"`
	Image           string    `json:"image"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	TokenBundle
}

// RegisterOutput returns the newly created user's identity and tokens.
type RegisterOutput struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	TokenBundle
}

// MessageOutput is the informational result of the email-driven flows.
type MessageOutput struct {
	Message string `json:"message"`
}

// AuthUsecase is the session and token manager: issuance, verification,
// rotation and revocation of credentials, plus the single-use token flows for
// email verification and password reset.
type AuthUsecase interface {
	// SignIn authenticates email+password and opens a new session.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Register creates a user, opens a session and enqueues a verification email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Logout blacklists the session for the access token's remaining lifetime
	// and deletes the session row. Idempotent.
	Logout(ctx context.Context, claims *service.AccessClaims) error

	// RefreshToken rotates the session hash and issues a fresh token pair.
	// The presented refresh token becomes permanently unusable on success.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*TokenBundle, error)

	// VerifyAccessToken validates signature and blacklist state, returning the
	// claims for downstream authorization.
	VerifyAccessToken(ctx context.Context, token string) (*service.AccessClaims, error)

	// VerifyEmailToken consumes a single-use email verification token.
	VerifyEmailToken(ctx context.Context, token string) error

	// ResendVerifyEmail re-issues a verification email unless the address is
	// already verified or a recent token is still pending.
	ResendVerifyEmail(ctx context.Context, email string) (*MessageOutput, error)

	// ForgotPassword issues a single-use password reset token and emails it.
	ForgotPassword(ctx context.Context, email string) (*MessageOutput, error)

	// VerifyForgotPassword checks a reset token without consuming it.
	VerifyForgotPassword(ctx context.Context, token string) error

	// ResetPassword consumes a reset token and replaces the user's password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*MessageOutput, error)
}
