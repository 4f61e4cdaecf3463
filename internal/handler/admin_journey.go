package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

type journeyBody struct {
	Route         uint64 `json:"route"`
	Train         uint64 `json:"train"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// parse resolves the body into a journey row, parsing the RFC 3339
// timestamps. Schedule ordering is checked later by the repository.
func (b *journeyBody) parse() (*model.Journey, string, bool) {
	if b.Route == 0 || b.Train == 0 {
		return nil, "route and train are required", false
	}
	dep, err := time.Parse(time.RFC3339, b.DepartureTime)
	if err != nil {
		return nil, "departure_time must be RFC 3339", false
	}
	arr, err := time.Parse(time.RFC3339, b.ArrivalTime)
	if err != nil {
		return nil, "arrival_time must be RFC 3339", false
	}
	return &model.Journey{RouteID: b.Route, TrainID: b.Train, DepartureTime: dep, ArrivalTime: arr}, "", true
}

// checkRefs verifies the referenced route and train exist so a bad
// reference comes back as a clean 404 instead of a driver error.
func (h *AdminHandler) checkRefs(c echo.Context, routeID, trainID uint64) (bool, error) {
	ctx := c.Request().Context()
	if _, err := h.Routes.GetByID(ctx, routeID); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return false, c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return false, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.Trains.GetByID(ctx, trainID); err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return false, c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return false, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return true, nil
}

// CreateJourney handles POST /v1/journeys. The schedule validator
// rejects a departure that is not strictly before the arrival.
func (h *AdminHandler) CreateJourney(c echo.Context) error {
	var body journeyBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	j, msg, ok := body.parse()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if ok, err := h.checkRefs(c, j.RouteID, j.TrainID); !ok {
		return err
	}
	if err := h.Journeys.Create(c.Request().Context(), j); err != nil {
		if handled, resp := validationJSON(c, err); handled {
			return resp
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create journey"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":             j.ID,
		"route":          j.RouteID,
		"train":          j.TrainID,
		"departure_time": j.DepartureTime.UTC().Format(time.RFC3339),
		"arrival_time":   j.ArrivalTime.UTC().Format(time.RFC3339),
	})
}

// UpdateJourney handles PUT /v1/journeys/:id.
func (h *AdminHandler) UpdateJourney(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid journey id"})
	}
	var body journeyBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	j, msg, ok := body.parse()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if ok, err := h.checkRefs(c, j.RouteID, j.TrainID); !ok {
		return err
	}
	j.ID = id
	if err := h.Journeys.Update(c.Request().Context(), j); err != nil {
		if handled, resp := validationJSON(c, err); handled {
			return resp
		}
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update journey"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":             j.ID,
		"route":          j.RouteID,
		"train":          j.TrainID,
		"departure_time": j.DepartureTime.UTC().Format(time.RFC3339),
		"arrival_time":   j.ArrivalTime.UTC().Format(time.RFC3339),
	})
}

// DeleteJourney handles DELETE /v1/journeys/:id. Booked tickets on
// the journey are removed by the cascade.
func (h *AdminHandler) DeleteJourney(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid journey id"})
	}
	if err := h.Journeys.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete journey"})
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCrew handles POST /v1/journeys/:id/crew. Assigning the same
// member twice is a no-op.
func (h *AdminHandler) AssignCrew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid journey id"})
	}
	var body struct {
		Crew uint64 `json:"crew"`
	}
	if err := c.Bind(&body); err != nil || body.Crew == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crew is required"})
	}
	ctx := c.Request().Context()
	if _, err := h.Journeys.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.Crew.GetByID(ctx, body.Crew); err != nil {
		if errors.Is(err, repository.ErrCrewNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "crew member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Journeys.AddCrew(ctx, id, body.Crew); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not assign crew member"})
	}
	return c.JSON(http.StatusOK, echo.Map{"journey": id, "crew": body.Crew})
}

// UnassignCrew handles DELETE /v1/journeys/:id/crew/:crewID.
func (h *AdminHandler) UnassignCrew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid journey id"})
	}
	crewID, err := pathID(c, "crewID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crew id"})
	}
	if err := h.Journeys.RemoveCrew(c.Request().Context(), id, crewID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not unassign crew member"})
	}
	return c.NoContent(http.StatusNoContent)
}
