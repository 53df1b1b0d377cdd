// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Each token family is signed with its own HS256 secret, so a token can never
// be replayed against a different verifier.
type jwtCodec struct {
	accessSecret       string
	refreshSecret      string
	verificationSecret map[service.TokenPurpose]string
	accessTTL          time.Duration
	refreshTTL         time.Duration
	verificationTTL    map[service.TokenPurpose]time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	auth := cfg.Auth
	if auth.AccessSecret == "" || auth.RefreshSecret == "" ||
		auth.ConfirmEmailSecret == "" || auth.ForgotSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtCodec{
		accessSecret:  auth.AccessSecret,
		refreshSecret: auth.RefreshSecret,
		verificationSecret: map[service.TokenPurpose]string{
			service.PurposeEmailVerification: auth.ConfirmEmailSecret,
			service.PurposePasswordReset:     auth.ForgotSecret,
		},
		accessTTL:  auth.AccessExpires,
		refreshTTL: auth.RefreshExpires,
		verificationTTL: map[service.TokenPurpose]time.Duration{
			service.PurposeEmailVerification: auth.ConfirmEmailExpires,
			service.PurposePasswordReset:     auth.ForgotExpires,
		},
	}, nil
}

// SignAccessToken creates an access token carrying the user and session IDs.
func (c *jwtCodec) SignAccessToken(userID, sessionID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.accessTTL)

	claims := jwt.MapClaims{
		"userId":    userID.String(),
		"sessionId": sessionID.String(),
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.accessSecret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// SignRefreshToken creates a refresh token bound to the session's current hash.
func (c *jwtCodec) SignRefreshToken(sessionID uuid.UUID, hash string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sessionId": sessionID.String(),
		"hash":      hash,
		"iat":       now.Unix(),
		"exp":       now.Add(c.refreshTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.refreshSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return token, nil
}

// SignVerificationToken creates a single-use token under the purpose's secret.
func (c *jwtCodec) SignVerificationToken(purpose service.TokenPurpose, userID uuid.UUID) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(c.verificationTTL[purpose]).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.verificationSecret[purpose]))
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", purpose)
	}

	return token, nil
}

// VerifyAccessToken validates an access token and returns its claims.
func (c *jwtCodec) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims, err := c.parse(tokenString, c.accessSecret)
	if err != nil {
		return nil, err
	}

	userID, err := claimUUID(claims, "userId")
	if err != nil {
		return nil, err
	}

	sessionID, err := claimUUID(claims, "sessionId")
	if err != nil {
		return nil, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, service.ErrInvalidToken
	}

	return &service.AccessClaims{
		UserID:    userID,
		SessionID: sessionID,
		ExpiresAt: exp.Time,
	}, nil
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (c *jwtCodec) VerifyRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims, err := c.parse(tokenString, c.refreshSecret)
	if err != nil {
		return nil, err
	}

	sessionID, err := claimUUID(claims, "sessionId")
	if err != nil {
		return nil, err
	}

	hash, ok := claims["hash"].(string)
	if !ok || hash == "" {
		return nil, service.ErrInvalidToken
	}

	return &service.RefreshClaims{
		SessionID: sessionID,
		Hash:      hash,
	}, nil
}

// VerifyVerificationToken validates a verification token under the purpose's secret.
func (c *jwtCodec) VerifyVerificationToken(purpose service.TokenPurpose, tokenString string) (*service.VerificationClaims, error) {
	claims, err := c.parse(tokenString, c.verificationSecret[purpose])
	if err != nil {
		return nil, err
	}

	userID, err := claimUUID(claims, "userId")
	if err != nil {
		return nil, err
	}

	return &service.VerificationClaims{UserID: userID}, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (c *jwtCodec) AccessTokenTTL() time.Duration {
	return c.accessTTL
}

// VerificationTokenTTL returns the configured lifetime for the purpose's tokens.
func (c *jwtCodec) VerificationTokenTTL(purpose service.TokenPurpose) time.Duration {
	return c.verificationTTL[purpose]
}

// parse validates a token string against a secret. Every failure mode,
// including expiry, collapses into service.ErrInvalidToken so callers cannot
// be used as a verification oracle.
func (c *jwtCodec) parse(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

// claimUUID extracts and parses a UUID claim.
func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return id, nil
}
