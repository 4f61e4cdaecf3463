package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

// stationView is the JSON shape of a station in API responses.
type stationView struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toStationView(s model.Station) stationView {
	return stationView{ID: s.ID, Name: s.Name, Latitude: s.Latitude, Longitude: s.Longitude}
}

// trainTypeView is the JSON shape of a train type in API responses.
type trainTypeView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PublicHandler serves the read-only catalogue: stations, routes,
// trains, train types, crew and journey search. All endpoints are
// reachable without authentication.
type PublicHandler struct {
	Stations   *repository.StationRepo
	Routes     *repository.RouteRepo
	TrainTypes *repository.TrainTypeRepo
	Trains     *repository.TrainRepo
	Crew       *repository.CrewRepo
	Journeys   *repository.JourneyRepo
}

// NewPublicHandler wires the browse endpoints to their repositories.
func NewPublicHandler(stations *repository.StationRepo, routes *repository.RouteRepo,
	trainTypes *repository.TrainTypeRepo, trains *repository.TrainRepo,
	crew *repository.CrewRepo, journeys *repository.JourneyRepo) *PublicHandler {
	if stations == nil || routes == nil || trainTypes == nil || trains == nil || crew == nil || journeys == nil {
		panic("handler: NewPublicHandler requires non-nil repositories")
	}
	return &PublicHandler{Stations: stations, Routes: routes, TrainTypes: trainTypes,
		Trains: trains, Crew: crew, Journeys: journeys}
}

// ListStations handles GET /v1/stations.
func (h *PublicHandler) ListStations(c echo.Context) error {
	stations, err := h.Stations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load stations"})
	}
	out := make([]stationView, 0, len(stations))
	for _, s := range stations {
		out = append(out, toStationView(s))
	}
	return c.JSON(http.StatusOK, out)
}

// GetStation handles GET /v1/stations/:id.
func (h *PublicHandler) GetStation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	s, err := h.Stations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load station"})
	}
	return c.JSON(http.StatusOK, toStationView(*s))
}

// ListRoutes handles GET /v1/routes. ?source and ?destination narrow
// by case-insensitive substring on the endpoint station names.
func (h *PublicHandler) ListRoutes(c echo.Context) error {
	routes, err := h.Routes.List(c.Request().Context(),
		c.QueryParam("source"), c.QueryParam("destination"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load routes"})
	}
	return c.JSON(http.StatusOK, routes)
}

// GetRoute handles GET /v1/routes/:id with expanded endpoints.
func (h *PublicHandler) GetRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid route id"})
	}
	d, err := h.Routes.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load route"})
	}
	return c.JSON(http.StatusOK, d)
}

// ListTrainTypes handles GET /v1/train-types.
func (h *PublicHandler) ListTrainTypes(c echo.Context) error {
	types, err := h.TrainTypes.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load train types"})
	}
	out := make([]trainTypeView, 0, len(types))
	for _, tt := range types {
		out = append(out, trainTypeView{ID: tt.ID, Name: tt.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// ListTrains handles GET /v1/trains. ?train_type narrows by substring
// on the type name.
func (h *PublicHandler) ListTrains(c echo.Context) error {
	trains, err := h.Trains.List(c.Request().Context(), c.QueryParam("train_type"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load trains"})
	}
	return c.JSON(http.StatusOK, trains)
}

// GetTrain handles GET /v1/trains/:id with the expanded type.
func (h *PublicHandler) GetTrain(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}
	d, err := h.Trains.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load train"})
	}
	return c.JSON(http.StatusOK, d)
}

// ListCrew handles GET /v1/crew.
func (h *PublicHandler) ListCrew(c echo.Context) error {
	crew, err := h.Crew.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load crew"})
	}
	return c.JSON(http.StatusOK, crew)
}

// SearchJourneys handles GET /v1/journeys. Filters: ?source,
// ?destination (substring on endpoint names) and ?train_types (a
// comma-separated list of type IDs). Results are paginated and
// ordered by departure time.
func (h *PublicHandler) SearchJourneys(c echo.Context) error {
	typeIDs, ok := repository.ParseIDList(c.QueryParam("train_types"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "train_types must be a comma-separated list of ids"})
	}
	page, pageSize := pageParams(c)
	q := repository.JourneySearchQuery{
		Source:       c.QueryParam("source"),
		Destination:  c.QueryParam("destination"),
		TrainTypeIDs: typeIDs,
		Page:         page,
		PageSize:     pageSize,
	}
	rows, total, err := h.Journeys.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not search journeys"})
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: rows, Total: total, Page: page, PageSize: pageSize})
}

// GetJourney handles GET /v1/journeys/:id: the full detail view with
// remaining capacity and the booked seat map.
func (h *PublicHandler) GetJourney(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid journey id"})
	}
	d, err := h.Journeys.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load journey"})
	}
	return c.JSON(http.StatusOK, d)
}
