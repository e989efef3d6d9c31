// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wardrobe/internal/delivery/http/middleware"
	"wardrobe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	OAuthHandler          *handler.OAuthHandler
	BiometricHandler      *handler.BiometricHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	oauthHandler          *handler.OAuthHandler
	biometricHandler      *handler.BiometricHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		oauthHandler:          params.OAuthHandler,
		biometricHandler:      params.BiometricHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Password login and local registration
	e.POST("/token", r.authHandler.Token)
	e.POST("/users/", r.authHandler.Register)

	// Google authorization-code flow
	googleGroup := e.Group("/google")
	{
		googleGroup.GET("/login", r.oauthHandler.Login)
		googleGroup.GET("/callback", r.oauthHandler.Callback)
	}

	// Routes that require a bearer token. The middleware is attached per
	// route; a prefix-less group would also guard unknown paths.
	authenticate := r.authMiddleware.Authenticate
	e.GET("/biometrics/me", r.biometricHandler.GetMine, authenticate)
	e.POST("/biometrics/me", r.biometricHandler.UpsertMine, authenticate)
	e.GET("/recommendations/me", r.recommendationHandler.GetMine, authenticate)
}
