// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mentalk/internal/delivery/http/middleware"
	"mentalk/internal/delivery/http/router/handler"
	"mentalk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MemberHandler  *handler.MemberHandler
	SessionHandler *handler.SessionHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	memberHandler  *handler.MemberHandler
	sessionHandler *handler.SessionHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		memberHandler:  params.MemberHandler,
		sessionHandler: params.SessionHandler,
		eventHandler:   params.EventHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate runs on every /api route and only resolves the identity;
// requests without a valid token continue anonymously until RequireAuth or
// RequireRole turns them away.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Credential routes, public
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/email/check", r.authHandler.CheckEmailInUse)
		authGroup.POST("/email/exists", r.authHandler.EmailExists)
		authGroup.POST("/email/find", r.authHandler.FindEmail)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
		authGroup.GET("/check", r.authHandler.CheckAuth)
	}

	// Member routes: signup is public, promotion requires a logged-in member
	memberGroup := api.Group("/members")
	{
		memberGroup.POST("", r.memberHandler.Signup)
		memberGroup.PUT("/role/mentor", r.memberHandler.PromoteToMentor, r.authMiddleware.RequireAuth)
	}

	// Session routes require authentication and the MENTOR role
	sessionGroup := api.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.RequireAuth)
	sessionGroup.Use(r.authMiddleware.RequireRole(entity.RoleMentor))
	{
		sessionGroup.POST("", r.sessionHandler.CreateSession)
	}

	// Event routes require authentication
	eventGroup := api.Group("/events")
	eventGroup.Use(r.authMiddleware.RequireAuth)
	{
		eventGroup.POST("", r.eventHandler.CreateEvent)
	}
}
