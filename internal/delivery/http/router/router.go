// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canino/internal/delivery/http/middleware"
	"canino/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	TrackingHandler     *handler.TrackingHandler
	RouteHandler        *handler.RouteHandler
	EtaHandler          *handler.EtaHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	trackingHandler     *handler.TrackingHandler
	routeHandler        *handler.RouteHandler
	etaHandler          *handler.EtaHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		trackingHandler:     params.TrackingHandler,
		routeHandler:        params.RouteHandler,
		etaHandler:          params.EtaHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Driver routes require authentication and the "driver" role
	driverGroup := e.Group("/driver")
	driverGroup.Use(r.authMiddleware.Authenticate)
	driverGroup.Use(r.authMiddleware.RequireRole("driver"))
	{
		driverGroup.POST("/vehicles/:id/locations", r.trackingHandler.ReportLocation)
		driverGroup.GET("/routes/today", r.routeHandler.DriverRoutesToday)
		driverGroup.POST("/routes/:id/start", r.routeHandler.StartRoute)
		driverGroup.POST("/routes/:id/complete", r.routeHandler.CompleteRoute)
		driverGroup.POST("/routes/:id/stops/:stopID/complete", r.routeHandler.CompleteStop)
	}

	// Parent routes require authentication and the "parent" role
	parentGroup := e.Group("/parent")
	parentGroup.Use(r.authMiddleware.Authenticate)
	parentGroup.Use(r.authMiddleware.RequireRole("parent"))
	{
		parentGroup.GET("/vehicles", r.trackingHandler.ListVehicles)
		parentGroup.GET("/vehicles/:id/location", r.trackingHandler.GetCurrentLocation)
		parentGroup.GET("/vehicles/:id/locations", r.trackingHandler.GetRecentLocations)
		parentGroup.GET("/vehicles/:id/stream", r.trackingHandler.StreamLocations)
		parentGroup.GET("/dogs/:dogID/eta", r.etaHandler.GetDogEta)
		parentGroup.GET("/routes/today", r.routeHandler.ParentRoutesToday)
		parentGroup.GET("/push/vapid-key", r.subscriptionHandler.GetVAPIDPublicKey)
		parentGroup.POST("/push/subscriptions", r.subscriptionHandler.Subscribe)
		parentGroup.DELETE("/push/subscriptions", r.subscriptionHandler.Unsubscribe)
		parentGroup.POST("/push/test", r.subscriptionHandler.SendTestNotification)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/routes", r.routeHandler.PlanRoute)
		adminGroup.GET("/vehicles/:id/tracking-qr", r.trackingHandler.GetTrackingQR)
	}
}
