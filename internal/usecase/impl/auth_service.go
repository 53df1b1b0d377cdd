// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const emailJobAttempts = 3

// authService implements the AuthUsecase interface. It owns no state of its
// own: everything lives in the store and the cache, so instances are safe for
// concurrent use.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cache       service.TokenCache
	codec       service.TokenCodec
	hasher      service.PasswordHasher
	mail        service.MailDispatcher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Cache       service.TokenCache
	Codec       service.TokenCodec
	Hasher      service.PasswordHasher
	Mail        service.MailDispatcher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		cache:       params.Cache,
		codec:       params.Codec,
		hasher:      params.Hasher,
		mail:        params.Mail,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn authenticates email+password credentials and opens a new session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Missing user and wrong password are indistinguishable to the caller.
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	// bcrypt comparison is constant-time and CPU-bound; no round trips held open.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	session, err := srv.createSession(ctx, srv.sessionRepo, user.ID)
	if err != nil {
		return nil, err
	}

	bundle, err := srv.issueTokens(user.ID, session.ID, session.Hash)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User signed in",
		slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))

	return &usecase.SignInOutput{
		UserID:          user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Bio:             user.Bio,
		Image:           user.Image,
		IsEmailVerified: user.IsEmailVerified(),
		TokenBundle:     *bundle,
	}, nil
}

// Register creates a new user and session, issues tokens and enqueues an
// email verification job. The enqueue is best-effort: a queue failure never
// undoes the registration.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedBy:    constants.SystemActor,
		UpdatedBy:    constants.SystemActor,
	}

	var session *entity.Session

	// User and session creation are atomic: a half-registered user with no
	// session would strand the caller without credentials.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, existsErr := userRepo.ExistsByEmail(ctx, email)
		if existsErr != nil {
			return errors.Wrap(existsErr, "failed to check existing email")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed")
		}

		if createErr := userRepo.Create(ctx, user); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		var sessionErr error
		session, sessionErr = srv.createSession(ctx, repoFactory.SessionRepo(), user.ID)

		return sessionErr
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	bundle, err := srv.issueTokens(user.ID, session.ID, session.Hash)
	if err != nil {
		return nil, err
	}

	srv.sendVerificationEmail(ctx, user.ID, user.Email, user.Username)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		TokenBundle: *bundle,
	}, nil
}

// Logout blacklists the session for the access token's remaining lifetime and
// deletes the session row. Safe to call twice.
func (srv *authService) Logout(ctx context.Context, claims *service.AccessClaims) error {
	srv.log(ctx).Info("Logging out", slog.Any("sessionID", claims.SessionID))

	// A zero or negative remainder means the access token is already expired
	// and will be rejected by signature verification; an unbounded cache entry
	// would outlive its purpose.
	if remaining := time.Until(claims.ExpiresAt); remaining > 0 {
		key := service.CacheKey(constants.CacheKeySessionBlacklist, claims.SessionID.String())
		if err := srv.cache.Set(ctx, key, "true", remaining); err != nil {
			return errors.Wrap(err, "failed to blacklist session")
		}
	}

	if err := srv.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// RefreshToken rotates the session hash and issues a fresh token pair. The
// stored hash is reloaded and compared on every call; a stale refresh token
// fails here no matter how recently it was valid.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.TokenBundle, error) {
	claims, err := srv.codec.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token verification failed")
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidSession, "session no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session for refresh")
	}

	if subtle.ConstantTimeCompare([]byte(session.Hash), []byte(claims.Hash)) != 1 {
		srv.log(ctx).Warn("Refresh token hash mismatch", slog.Any("sessionID", session.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidSession, "session hash mismatch")
	}

	newHash, err := generateSessionHash()
	if err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.UpdateHash(ctx, session.ID, newHash, constants.SystemActor); err != nil {
		return nil, errors.Wrap(err, "failed to rotate session hash")
	}

	srv.log(ctx).Debug("Session hash rotated", slog.Any("sessionID", session.ID))

	return srv.issueTokens(session.UserID, session.ID, newHash)
}

// VerifyAccessToken validates the token signature, then rejects tokens whose
// session has been blacklisted by logout.
func (srv *authService) VerifyAccessToken(ctx context.Context, token string) (*service.AccessClaims, error) {
	claims, err := srv.codec.VerifyAccessToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "access token verification failed")
	}

	key := service.CacheKey(constants.CacheKeySessionBlacklist, claims.SessionID.String())
	if _, err := srv.cache.Get(ctx, key); err == nil {
		return nil, errors.Wrap(domainerrors.ErrSessionRevoked, "session is blacklisted")
	} else if !errors.Is(err, service.ErrCacheMiss) {
		return nil, errors.Wrap(err, "failed to check session blacklist")
	}

	return claims, nil
}

// VerifyEmailToken consumes a single-use email verification token: the
// signature must verify and the cache must hold this exact token.
func (srv *authService) VerifyEmailToken(ctx context.Context, token string) error {
	claims, err := srv.codec.VerifyVerificationToken(service.PurposeEmailVerification, token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, "email verification token invalid")
	}

	if err := srv.validateCachedToken(ctx, service.PurposeEmailVerification, claims.UserID, token); err != nil {
		return err
	}

	return srv.confirmUserEmail(ctx, claims.UserID)
}

// ResendVerifyEmail re-issues a verification email. While an earlier token is
// still cached no new one is produced, which bounds how often a single
// address can be mailed.
func (srv *authService) ResendVerifyEmail(ctx context.Context, email string) (*usecase.MessageOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "resend verification failed")
		}

		return nil, errors.Wrap(err, "failed to load user for resend verification")
	}

	if user.IsEmailVerified() {
		return &usecase.MessageOutput{Message: "Email already verified."}, nil
	}

	key := service.CacheKey(constants.CacheKeyEmailVerification, user.ID.String())
	if _, err := srv.cache.Get(ctx, key); err == nil {
		return &usecase.MessageOutput{
			Message: "There is already a recent verification email. Wait for the expiration time.",
		}, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		return nil, errors.Wrap(err, "failed to check pending verification token")
	}

	srv.sendVerificationEmail(ctx, user.ID, user.Email, user.Username)

	return &usecase.MessageOutput{Message: "Verification email sent successfully."}, nil
}

// ForgotPassword issues a single-use password reset token and emails it.
func (srv *authService) ForgotPassword(ctx context.Context, email string) (*usecase.MessageOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "forgot password failed")
		}

		return nil, errors.Wrap(err, "failed to load user for forgot password")
	}

	token, err := srv.issueVerificationToken(ctx, service.PurposePasswordReset, user.ID)
	if err != nil {
		return nil, err
	}

	srv.enqueueEmail(ctx, &service.EmailJob{
		Name:     constants.JobEmailForgotPassword,
		Email:    user.Email,
		Token:    token,
		Attempts: emailJobAttempts,
	})

	return &usecase.MessageOutput{Message: "Recovery email sent."}, nil
}

// VerifyForgotPassword checks a reset token without consuming it, so the
// caller can gate a password form on a still-valid link.
func (srv *authService) VerifyForgotPassword(ctx context.Context, token string) error {
	claims, err := srv.codec.VerifyVerificationToken(service.PurposePasswordReset, token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, "password reset token invalid")
	}

	return srv.validateCachedToken(ctx, service.PurposePasswordReset, claims.UserID, token)
}

// ResetPassword consumes a reset token and replaces the user's password. The
// cached copy is re-checked here so the token is usable exactly once
// regardless of its remaining signature validity.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.MessageOutput, error) {
	claims, err := srv.codec.VerifyVerificationToken(service.PurposePasswordReset, input.Token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "password reset token invalid")
	}

	if err := srv.validateCachedToken(ctx, service.PurposePasswordReset, claims.UserID, input.Token); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "reset password failed")
		}

		return nil, errors.Wrap(err, "failed to load user for password reset")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = passwordHash
	user.UpdatedBy = constants.SystemActor
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist new password")
	}

	key := service.CacheKey(constants.CacheKeyPasswordReset, claims.UserID.String())
	if err := srv.cache.Delete(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to consume password reset token")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return &usecase.MessageOutput{Message: "Password reset successfully."}, nil
}

// --- internals ---

// createSession opens a new session row with a freshly generated rotating hash.
func (srv *authService) createSession(ctx context.Context, sessionRepo repository.SessionRepository, userID uuid.UUID) (*entity.Session, error) {
	hash, err := generateSessionHash()
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserID:    userID,
		Hash:      hash,
		CreatedBy: constants.SystemActor,
		UpdatedBy: constants.SystemActor,
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

// issueTokens signs the access+refresh pair for a session and its current hash.
func (srv *authService) issueTokens(userID, sessionID uuid.UUID, hash string) (*usecase.TokenBundle, error) {
	accessToken, expiresAt, err := srv.codec.SignAccessToken(userID, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := srv.codec.SignRefreshToken(sessionID, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &usecase.TokenBundle{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenExpires: expiresAt.UnixMilli(),
	}, nil
}

// issueVerificationToken signs a single-use token and caches it under the
// purpose's key with a TTL matching the token's signed expiry.
func (srv *authService) issueVerificationToken(ctx context.Context, purpose service.TokenPurpose, userID uuid.UUID) (string, error) {
	token, err := srv.codec.SignVerificationToken(purpose, userID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", purpose)
	}

	key := service.CacheKey(purposeCachePrefix(purpose), userID.String())
	if err := srv.cache.Set(ctx, key, token, srv.codec.VerificationTokenTTL(purpose)); err != nil {
		return "", errors.Wrapf(err, "failed to cache %s token", purpose)
	}

	return token, nil
}

// validateCachedToken enforces the single-use gate: the cache entry must exist
// and must equal the presented token byte-for-byte. Absence and mismatch are
// reported identically.
func (srv *authService) validateCachedToken(ctx context.Context, purpose service.TokenPurpose, userID uuid.UUID, token string) error {
	key := service.CacheKey(purposeCachePrefix(purpose), userID.String())

	cached, err := srv.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return errors.Wrap(domainerrors.ErrInvalidToken, "token not issued or expired")
		}

		return errors.Wrap(err, "failed to load cached token")
	}

	if subtle.ConstantTimeCompare([]byte(cached), []byte(token)) != 1 {
		return errors.Wrap(domainerrors.ErrInvalidToken, "token mismatch")
	}

	return nil
}

// confirmUserEmail marks the user verified, queues the welcome email and
// consumes the cache entry. Already-verified users are left untouched.
func (srv *authService) confirmUserEmail(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "email confirmation failed")
		}

		return errors.Wrap(err, "failed to load user for email confirmation")
	}

	if user.IsEmailVerified() {
		return nil
	}

	now := time.Now()
	user.EmailVerifiedAt = &now
	user.UpdatedBy = constants.SystemActor
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist email verification")
	}

	srv.enqueueEmail(ctx, &service.EmailJob{
		Name:     constants.JobEmailAfterVerification,
		Email:    user.Email,
		Username: user.Username,
		Attempts: emailJobAttempts,
	})

	key := service.CacheKey(constants.CacheKeyEmailVerification, userID.String())
	if err := srv.cache.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to consume email verification token")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", userID))

	return nil
}

// sendVerificationEmail issues an email-verification token and queues the mail
// job. Failures are logged and swallowed: registration and resend must not
// fail because the queue is down.
func (srv *authService) sendVerificationEmail(ctx context.Context, userID uuid.UUID, email, username string) {
	token, err := srv.issueVerificationToken(ctx, service.PurposeEmailVerification, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification token",
			slog.Any("userID", userID), slog.Any("error", err))

		return
	}

	srv.enqueueEmail(ctx, &service.EmailJob{
		Name:     constants.JobEmailVerification,
		Email:    email,
		Username: username,
		Token:    token,
		Attempts: emailJobAttempts,
	})
}

// enqueueEmail publishes a mail job, logging and swallowing any failure.
func (srv *authService) enqueueEmail(ctx context.Context, job *service.EmailJob) {
	if err := srv.mail.Enqueue(ctx, job); err != nil {
		srv.log(ctx).Error("Failed to enqueue email job",
			slog.String("job", job.Name), slog.Any("error", err))
	}
}

func purposeCachePrefix(purpose service.TokenPurpose) string {
	if purpose == service.PurposePasswordReset {
		return constants.CacheKeyPasswordReset
	}

	return constants.CacheKeyEmailVerification
}

// generateSessionHash produces a fresh rotating secret: the hex SHA-256 of 32
// random bytes.
func generateSessionHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session hash")
	}

	sum := sha256.Sum256(buf)

	return hex.EncodeToString(sum[:]), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
