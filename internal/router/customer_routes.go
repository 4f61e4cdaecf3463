package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/handler"
	"github.com/iliyamo/railway-ticket-service/internal/middleware"
)

// RegisterCustomer registers the booking endpoints under /v1. All
// routes require a valid JWT; both roles may book. Orders are scoped
// to the authenticated user inside the handlers, so no ownership
// checks live here.
func RegisterCustomer(e *echo.Echo, h *handler.OrderHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		append([]echo.MiddlewareFunc{
			middleware.JWTAuth(jwtSecret),
			middleware.RequireRole("ADMIN", "CUSTOMER"),
		}, mw...)...,
	)

	g.POST("/orders", h.CreateOrder)
	g.GET("/orders", h.ListOrders)
	g.GET("/orders/:id", h.GetOrder)
	g.DELETE("/orders/:id", h.DeleteOrder)
}
