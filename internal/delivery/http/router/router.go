// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"promptpush/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotifyHandler   *handler.NotifyHandler
	EndpointHandler *handler.EndpointHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notifyHandler   *handler.NotifyHandler
	endpointHandler *handler.EndpointHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notifyHandler:   params.NotifyHandler,
		endpointHandler: params.EndpointHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Internal dispatch triggers, called by the chat backend
	notifyGroup := e.Group("/internal/notify")
	{
		notifyGroup.POST("/message", r.notifyHandler.NotifyMessage)
		notifyGroup.POST("/turn", r.notifyHandler.NotifyTurn)
	}

	// Push subscription management for browsers
	pushGroup := e.Group("/push")
	{
		pushGroup.POST("/subscriptions", r.endpointHandler.RegisterEndpoint)
		pushGroup.GET("/subscriptions", r.endpointHandler.ListEndpoints)
		pushGroup.DELETE("/subscriptions/:id", r.endpointHandler.RemoveEndpoint)
		pushGroup.GET("/vapid-public-key", r.endpointHandler.VAPIDPublicKey)
	}
}
