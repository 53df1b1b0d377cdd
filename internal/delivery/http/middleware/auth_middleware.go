package middleware

import (
	"strings"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyAccessClaims is the echo.Context key under which the verified access
// token claims are stored for handlers.
const KeyAccessClaims = "accessClaims"

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer access token, including the session
// blacklist check, and stores the claims on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.authUC.VerifyAccessToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		// Set claims on the context for handlers to use
		c.Set(KeyAccessClaims, claims)

		return next(c)
	}
}

// GetAccessClaims returns the claims stored by Authenticate, or nil when the
// route was reached without passing through it.
func GetAccessClaims(c echo.Context) *service.AccessClaims {
	claims, _ := c.Get(KeyAccessClaims).(*service.AccessClaims)

	return claims
}
