package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	cache       *mockSvc.MockTokenCache
	codec       *mockSvc.MockTokenCodec
	hasher      *mockSvc.MockPasswordHasher
	mail        *mockSvc.MockMailDispatcher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	cache := mockSvc.NewMockTokenCache(t)
	codec := mockSvc.NewMockTokenCodec(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mail := mockSvc.NewMockMailDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Cache:       cache,
		Codec:       codec,
		Hasher:      hasher,
		Mail:        mail,
		Logger:      logger,
	})

	return authServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
		codec:       codec,
		hasher:      hasher,
		mail:        mail,
	}
}

func testUser(verified bool) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "tester",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	if verified {
		now := time.Now()
		user.EmailVerifiedAt = &now
	}

	return user
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)
	sessionID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, user.ID, session.UserID)
			assert.Len(t, session.Hash, 64)
			session.ID = sessionID
		}).
		Return(nil)
	fx.codec.EXPECT().SignAccessToken(user.ID, sessionID).Return("access-token", expiresAt, nil)
	fx.codec.EXPECT().SignRefreshToken(sessionID, mock.AnythingOfType("string")).Return("refresh-token", nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "Test@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, expiresAt.UnixMilli(), output.TokenExpires)
	assert.True(t, output.IsEmailVerified)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	// Wrong password and unknown email are indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Username: "newbie",
	}
	userID := uuid.New()
	sessionID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					assert.Equal(t, constants.SystemActor, user.CreatedBy)
					user.ID = userID
				}).
				Return(nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(_ context.Context, session *entity.Session) {
					session.ID = sessionID
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.codec.EXPECT().SignAccessToken(userID, sessionID).Return("access-token", expiresAt, nil)
	fx.codec.EXPECT().SignRefreshToken(sessionID, mock.AnythingOfType("string")).Return("refresh-token", nil)

	fx.codec.EXPECT().
		SignVerificationToken(service.PurposeEmailVerification, userID).
		Return("verify-token", nil)
	fx.codec.EXPECT().
		VerificationTokenTTL(service.PurposeEmailVerification).
		Return(24 * time.Hour)
	fx.cache.EXPECT().
		Set(ctx, "auth:email-verification:"+userID.String(), "verify-token", 24*time.Hour).
		Return(nil)
	fx.mail.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(job *service.EmailJob) bool {
			return job.Name == constants.JobEmailVerification &&
				job.Email == input.Email &&
				job.Token == "verify-token" &&
				job.Attempts == 3
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		Username: "dup",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Register_EnqueueFailureDoesNotFail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Username: "newbie",
	}
	userID := uuid.New()
	sessionID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
				Return(nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(_ context.Context, session *entity.Session) { session.ID = sessionID }).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.codec.EXPECT().SignAccessToken(userID, sessionID).Return("access-token", time.Now().Add(time.Hour), nil)
	fx.codec.EXPECT().SignRefreshToken(sessionID, mock.AnythingOfType("string")).Return("refresh-token", nil)
	fx.codec.EXPECT().
		SignVerificationToken(service.PurposeEmailVerification, userID).
		Return("verify-token", nil)
	fx.codec.EXPECT().
		VerificationTokenTTL(service.PurposeEmailVerification).
		Return(24 * time.Hour)
	fx.cache.EXPECT().
		Set(ctx, "auth:email-verification:"+userID.String(), "verify-token", 24*time.Hour).
		Return(nil)
	fx.mail.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*service.EmailJob")).
		Return(errors.New("queue unavailable"))

	// The queue failure is logged and swallowed.
	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
}

func TestAuthService_Logout_BlacklistsAndDeletes(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.AccessClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.cache.EXPECT().
		Set(ctx, "auth:session-blacklist:"+claims.SessionID.String(), "true", mock.AnythingOfType("time.Duration")).
		Run(func(_ context.Context, _ string, _ string, ttl time.Duration) {
			// TTL tracks the access token's remaining lifetime.
			assert.Greater(t, ttl, 9*time.Minute)
			assert.LessOrEqual(t, ttl, 10*time.Minute)
		}).
		Return(nil)
	fx.sessionRepo.EXPECT().Delete(ctx, claims.SessionID).Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, claims))
}

func TestAuthService_Logout_ExpiredTokenSkipsBlacklist(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.AccessClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	// No cache write: a blacklist entry with no expiry would never be evicted.
	fx.sessionRepo.EXPECT().Delete(ctx, claims.SessionID).Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, claims))
}

func TestAuthService_Logout_SessionAlreadyDeleted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.AccessClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.cache.EXPECT().
		Set(ctx, "auth:session-blacklist:"+claims.SessionID.String(), "true", mock.AnythingOfType("time.Duration")).
		Return(nil)
	fx.sessionRepo.EXPECT().Delete(ctx, claims.SessionID).Return(repository.ErrSessionNotFound)

	// Logout is idempotent.
	assert.NoError(t, fx.service.Logout(ctx, claims))
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Hash:   "current-hash",
	}
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.codec.EXPECT().VerifyRefreshToken("refresh-token").Return(&service.RefreshClaims{
		SessionID: session.ID,
		Hash:      "current-hash",
	}, nil)
	fx.sessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)

	var rotatedHash string
	fx.sessionRepo.EXPECT().
		UpdateHash(ctx, session.ID, mock.AnythingOfType("string"), constants.SystemActor).
		Run(func(_ context.Context, _ uuid.UUID, hash string, _ string) {
			assert.NotEqual(t, "current-hash", hash)
			rotatedHash = hash
		}).
		Return(nil)
	fx.codec.EXPECT().SignAccessToken(session.UserID, session.ID).Return("new-access", expiresAt, nil)
	fx.codec.EXPECT().
		SignRefreshToken(session.ID, mock.AnythingOfType("string")).
		Run(func(_ uuid.UUID, hash string) {
			// The new refresh token is bound to the rotated hash.
			assert.Equal(t, rotatedHash, hash)
		}).
		Return("new-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.codec.EXPECT().VerifyRefreshToken("garbage").Return(nil, service.ErrInvalidToken)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_RefreshToken_SessionDeleted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.codec.EXPECT().VerifyRefreshToken("refresh-token").Return(&service.RefreshClaims{
		SessionID: sessionID,
		Hash:      "whatever",
	}, nil)
	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSession))
}

func TestAuthService_RefreshToken_StaleHash(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Hash:   "rotated-away",
	}

	fx.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(&service.RefreshClaims{
		SessionID: session.ID,
		Hash:      "previous-hash",
	}, nil)
	fx.sessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)

	// A replayed refresh token fails even though its signature is valid.
	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSession))
}

func TestAuthService_VerifyAccessToken_Valid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.AccessClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.codec.EXPECT().VerifyAccessToken("access-token").Return(claims, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:session-blacklist:"+claims.SessionID.String()).
		Return("", service.ErrCacheMiss)

	got, err := fx.service.VerifyAccessToken(ctx, "access-token")

	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestAuthService_VerifyAccessToken_Blacklisted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.AccessClaims{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	fx.codec.EXPECT().VerifyAccessToken("access-token").Return(claims, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:session-blacklist:"+claims.SessionID.String()).
		Return("true", nil)

	got, err := fx.service.VerifyAccessToken(ctx, "access-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionRevoked))
}

func TestAuthService_VerifyAccessToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.codec.EXPECT().VerifyAccessToken("garbage").Return(nil, service.ErrInvalidToken)

	got, err := fx.service.VerifyAccessToken(ctx, "garbage")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_VerifyEmailToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(false)
	key := "auth:email-verification:" + user.ID.String()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposeEmailVerification, "verify-token").
		Return(&service.VerificationClaims{UserID: user.ID}, nil)
	fx.cache.EXPECT().Get(ctx, key).Return("verify-token", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.NotNil(t, updated.EmailVerifiedAt)
		}).
		Return(nil)
	fx.mail.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(job *service.EmailJob) bool {
			return job.Name == constants.JobEmailAfterVerification && job.Email == user.Email
		})).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, key).Return(nil)

	assert.NoError(t, fx.service.VerifyEmailToken(ctx, "verify-token"))
}

func TestAuthService_VerifyEmailToken_NotIssued(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposeEmailVerification, "verify-token").
		Return(&service.VerificationClaims{UserID: userID}, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:email-verification:"+userID.String()).
		Return("", service.ErrCacheMiss)

	err := fx.service.VerifyEmailToken(ctx, "verify-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_VerifyEmailToken_SupersededToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposeEmailVerification, "old-token").
		Return(&service.VerificationClaims{UserID: userID}, nil)
	// The cache holds a newer token than the one presented.
	fx.cache.EXPECT().
		Get(ctx, "auth:email-verification:"+userID.String()).
		Return("newer-token", nil)

	err := fx.service.VerifyEmailToken(ctx, "old-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_VerifyEmailToken_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)
	key := "auth:email-verification:" + user.ID.String()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposeEmailVerification, "verify-token").
		Return(&service.VerificationClaims{UserID: user.ID}, nil)
	fx.cache.EXPECT().Get(ctx, key).Return("verify-token", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	// No update and no welcome email for an already-verified user.
	assert.NoError(t, fx.service.VerifyEmailToken(ctx, "verify-token"))
}

func TestAuthService_ResendVerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	output, err := fx.service.ResendVerifyEmail(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, "Email already verified.", output.Message)
}

func TestAuthService_ResendVerifyEmail_Throttled(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(false)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:email-verification:"+user.ID.String()).
		Return("still-pending", nil)

	output, err := fx.service.ResendVerifyEmail(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, "There is already a recent verification email. Wait for the expiration time.", output.Message)
}

func TestAuthService_ResendVerifyEmail_Sends(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(false)
	key := "auth:email-verification:" + user.ID.String()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.cache.EXPECT().Get(ctx, key).Return("", service.ErrCacheMiss)
	fx.codec.EXPECT().
		SignVerificationToken(service.PurposeEmailVerification, user.ID).
		Return("fresh-token", nil)
	fx.codec.EXPECT().
		VerificationTokenTTL(service.PurposeEmailVerification).
		Return(24 * time.Hour)
	fx.cache.EXPECT().Set(ctx, key, "fresh-token", 24*time.Hour).Return(nil)
	fx.mail.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(job *service.EmailJob) bool {
			return job.Name == constants.JobEmailVerification && job.Token == "fresh-token"
		})).
		Return(nil)

	output, err := fx.service.ResendVerifyEmail(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, "Verification email sent successfully.", output.Message)
}

func TestAuthService_ResendVerifyEmail_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ResendVerifyEmail(ctx, "ghost@example.com")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)
	key := "auth:password-reset:" + user.ID.String()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codec.EXPECT().
		SignVerificationToken(service.PurposePasswordReset, user.ID).
		Return("reset-token", nil)
	fx.codec.EXPECT().
		VerificationTokenTTL(service.PurposePasswordReset).
		Return(time.Hour)
	fx.cache.EXPECT().Set(ctx, key, "reset-token", time.Hour).Return(nil)
	fx.mail.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(job *service.EmailJob) bool {
			return job.Name == constants.JobEmailForgotPassword &&
				job.Email == user.Email &&
				job.Token == "reset-token"
		})).
		Return(nil)

	output, err := fx.service.ForgotPassword(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, "Recovery email sent.", output.Message)
}

func TestAuthService_ForgotPassword_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ForgotPassword(ctx, "ghost@example.com")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_VerifyForgotPassword_Valid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposePasswordReset, "reset-token").
		Return(&service.VerificationClaims{UserID: userID}, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:password-reset:"+userID.String()).
		Return("reset-token", nil)

	// The token is checked but not consumed.
	assert.NoError(t, fx.service.VerifyForgotPassword(ctx, "reset-token"))
}

func TestAuthService_VerifyForgotPassword_Mismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposePasswordReset, "stale-token").
		Return(&service.VerificationClaims{UserID: userID}, nil)
	fx.cache.EXPECT().
		Get(ctx, "auth:password-reset:"+userID.String()).
		Return("newer-token", nil)

	err := fx.service.VerifyForgotPassword(ctx, "stale-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser(true)
	key := "auth:password-reset:" + user.ID.String()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposePasswordReset, "reset-token").
		Return(&service.VerificationClaims{UserID: user.ID}, nil)
	fx.cache.EXPECT().Get(ctx, key).Return("reset-token", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hashed_password", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new_hashed_password", updated.PasswordHash)
			assert.Equal(t, constants.SystemActor, updated.UpdatedBy)
		}).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, key).Return(nil)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "reset-token",
		Password: "NewPassword123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "Password reset successfully.", output.Message)
}

func TestAuthService_ResetPassword_ReusedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.codec.EXPECT().
		VerifyVerificationToken(service.PurposePasswordReset, "reset-token").
		Return(&service.VerificationClaims{UserID: userID}, nil)
	// First use deleted the cache entry; the replay finds nothing.
	fx.cache.EXPECT().
		Get(ctx, "auth:password-reset:"+userID.String()).
		Return("", service.ErrCacheMiss)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "reset-token",
		Password: "NewPassword123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
