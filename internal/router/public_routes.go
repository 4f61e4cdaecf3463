package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints.
// Guests can inspect the full catalogue and search journeys before
// registering; no JWT or role middleware applies here. The optional
// middlewares (typically the Redis response cache) wrap only this
// group.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	g.GET("/stations", p.ListStations)
	g.GET("/stations/:id", p.GetStation)

	// ?source= and ?destination= narrow by endpoint station name.
	g.GET("/routes", p.ListRoutes)
	g.GET("/routes/:id", p.GetRoute)

	g.GET("/train-types", p.ListTrainTypes)
	// ?train_type= narrows by type name.
	g.GET("/trains", p.ListTrains)
	g.GET("/trains/:id", p.GetTrain)

	g.GET("/crew", p.ListCrew)

	// Journey search: ?source, ?destination, ?train_types=1,3 plus
	// pagination. The detail view includes the booked seat map.
	g.GET("/journeys", p.SearchJourneys)
	g.GET("/journeys/:id", p.GetJourney)
}
