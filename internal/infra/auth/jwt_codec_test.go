package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		AccessSecret:        "test_access_secret_key_very_long_for_testing",
		AccessExpires:       15 * time.Minute,
		RefreshSecret:       "test_refresh_secret_key_very_long_for_testing",
		RefreshExpires:      7 * 24 * time.Hour,
		ConfirmEmailSecret:  "test_confirm_email_secret_key_for_testing",
		ConfirmEmailExpires: 24 * time.Hour,
		ForgotSecret:        "test_forgot_secret_key_for_testing",
		ForgotExpires:       time.Hour,
	}

	return cfg
}

func TestJWTCodec_SignAndVerifyAccessToken(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	sessionID := uuid.New()

	token, expiresAt, err := codec.SignAccessToken(userID, sessionID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := codec.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	// JWT exp has second precision.
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTCodec_SignAndVerifyRefreshToken(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	sessionID := uuid.New()
	hash := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	token, err := codec.SignRefreshToken(sessionID, hash)
	assert.NoError(t, err)

	claims, err := codec.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, hash, claims.Hash)
}

func TestJWTCodec_VerificationTokensArePurposeBound(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	userID := uuid.New()

	emailToken, err := codec.SignVerificationToken(service.PurposeEmailVerification, userID)
	require.NoError(t, err)

	claims, err := codec.VerifyVerificationToken(service.PurposeEmailVerification, emailToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// A token signed for one purpose must not verify under another.
	_, err = codec.VerifyVerificationToken(service.PurposePasswordReset, emailToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_TokensAreNotInterchangeable(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	sessionID := uuid.New()

	accessToken, _, err := codec.SignAccessToken(userID, sessionID)
	require.NoError(t, err)

	// Access tokens must not verify as refresh tokens.
	_, err = codec.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	refreshToken, err := codec.SignRefreshToken(sessionID, "hash")
	require.NoError(t, err)

	_, err = codec.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_InvalidToken(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.VerifyAccessToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)

		_, err = codec.VerifyRefreshToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)

		_, err = codec.VerifyVerificationToken(service.PurposeEmailVerification, token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestJWTCodec_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AccessExpires = -time.Minute

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	token, _, err := codec.SignAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = codec.VerifyAccessToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_MissingSecrets(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RefreshSecret = ""

	_, err := NewJWTCodec(cfg)
	assert.Error(t, err)
}

func TestJWTCodec_TTLAccessors(t *testing.T) {
	codec, err := NewJWTCodec(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, codec.AccessTokenTTL())
	assert.Equal(t, 24*time.Hour, codec.VerificationTokenTTL(service.PurposeEmailVerification))
	assert.Equal(t, time.Hour, codec.VerificationTokenTTL(service.PurposePasswordReset))
}
