package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/handler"
	"github.com/iliyamo/railway-ticket-service/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped catalogue management under
// /v1. All routes require a valid JWT and the ADMIN role. Listing
// endpoints are handled by the public browse API, so only writes are
// registered here.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Stations ----
	g.POST("/stations", a.CreateStation)
	g.PUT("/stations/:id", a.UpdateStation)
	g.DELETE("/stations/:id", a.DeleteStation)

	// ---- Routes ----
	g.POST("/routes", a.CreateRoute)
	g.PUT("/routes/:id", a.UpdateRoute)
	g.DELETE("/routes/:id", a.DeleteRoute)

	// ---- Train types ----
	g.POST("/train-types", a.CreateTrainType)
	g.PUT("/train-types/:id", a.UpdateTrainType)
	g.DELETE("/train-types/:id", a.DeleteTrainType)

	// ---- Trains ----
	g.POST("/trains", a.CreateTrain)
	g.PUT("/trains/:id", a.UpdateTrain)
	g.DELETE("/trains/:id", a.DeleteTrain)
	g.POST("/trains/:id/image", a.UploadTrainImage)

	// ---- Crew ----
	g.POST("/crew", a.CreateCrew)
	g.PUT("/crew/:id", a.UpdateCrew)
	g.DELETE("/crew/:id", a.DeleteCrew)

	// ---- Journeys ----
	g.POST("/journeys", a.CreateJourney)
	g.PUT("/journeys/:id", a.UpdateJourney)
	g.DELETE("/journeys/:id", a.DeleteJourney)
	g.POST("/journeys/:id/crew", a.AssignCrew)
	g.DELETE("/journeys/:id/crew/:crewID", a.UnassignCrew)
}
