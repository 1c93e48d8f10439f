// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"billdesk/internal/delivery/http/middleware"
	"billdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler    *handler.PageHandler
	SessionHandler *handler.SessionHandler
	Guard          *middleware.GuardMiddleware
	RequestID      *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler    *handler.PageHandler
	sessionHandler *handler.SessionHandler
	guard          *middleware.GuardMiddleware
	requestID      *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:    params.PageHandler,
		sessionHandler: params.SessionHandler,
		guard:          params.Guard,
		requestID:      params.RequestID,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Handle)

	// Health check endpoint
	e.GET("/healthz", handler.HealthCheck)

	// Anonymous views; signed-in visitors are bounced back to the dashboard.
	anonymous := e.Group("", r.guard.RedirectAuthenticated)
	{
		anonymous.GET("/login", r.pageHandler.LoginPage)
		anonymous.POST("/login", r.sessionHandler.Login)
		anonymous.GET("/register", r.pageHandler.RegisterPage)
		anonymous.POST("/register", r.sessionHandler.Register)
	}

	// Protected subtree mounts only for an authenticated session.
	protected := e.Group("", r.guard.RequireSession)
	{
		protected.GET("/", r.pageHandler.Dashboard)
		protected.POST("/logout", r.sessionHandler.Logout)
	}
}
