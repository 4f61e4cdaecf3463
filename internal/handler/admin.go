package handler

import "github.com/iliyamo/railway-ticket-service/internal/repository"

// AdminHandler bundles the repositories administrators use to manage
// reference data: stations, routes, train types, trains, crew and
// journeys. Role gating happens in middleware; these handlers only
// implement the operations.
type AdminHandler struct {
	Stations   *repository.StationRepo
	Routes     *repository.RouteRepo
	TrainTypes *repository.TrainTypeRepo
	Trains     *repository.TrainRepo
	Crew       *repository.CrewRepo
	Journeys   *repository.JourneyRepo
}

// NewAdminHandler constructs an AdminHandler. All dependencies must
// be non-nil.
func NewAdminHandler(stations *repository.StationRepo, routes *repository.RouteRepo, trainTypes *repository.TrainTypeRepo, trains *repository.TrainRepo, crew *repository.CrewRepo, journeys *repository.JourneyRepo) *AdminHandler {
	if stations == nil || routes == nil || trainTypes == nil || trains == nil || crew == nil || journeys == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Stations:   stations,
		Routes:     routes,
		TrainTypes: trainTypes,
		Trains:     trains,
		Crew:       crew,
		Journeys:   journeys,
	}
}
