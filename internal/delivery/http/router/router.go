// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/email/login", r.authHandler.SignIn)
		authGroup.POST("/email/register", r.authHandler.Register)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)

		// Email verification: the GET form serves links clicked from the mail client.
		authGroup.GET("/verify/email", r.authHandler.VerifyEmail)
		authGroup.POST("/verify/email/resend", r.authHandler.ResendVerifyEmail)

		// Password recovery
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/verify/forgot-password", r.authHandler.VerifyForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}
}
