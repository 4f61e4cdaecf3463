package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

type routeBody struct {
	Source      uint64 `json:"source"`
	Destination uint64 `json:"destination"`
	Distance    int64  `json:"distance"`
}

// CreateRoute handles POST /v1/routes. The repository re-checks the
// geometry against the stored station coordinates before writing.
func (h *AdminHandler) CreateRoute(c echo.Context) error {
	var body routeBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Source == 0 || body.Destination == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "source and destination are required"})
	}
	if body.Distance <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "distance must be positive"})
	}
	route := &model.Route{SourceID: body.Source, DestinationID: body.Destination, Distance: body.Distance}
	if err := h.Routes.Create(c.Request().Context(), route); err != nil {
		if handled, herr := validationJSON(c, err); handled {
			return herr
		}
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create route"})
	}
	return c.JSON(http.StatusCreated, route)
}

// UpdateRoute handles PUT /v1/routes/:id.
func (h *AdminHandler) UpdateRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid route id"})
	}
	var body routeBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Source == 0 || body.Destination == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "source and destination are required"})
	}
	if body.Distance <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "distance must be positive"})
	}
	route := &model.Route{ID: id, SourceID: body.Source, DestinationID: body.Destination, Distance: body.Distance}
	if err := h.Routes.Update(c.Request().Context(), route); err != nil {
		if handled, herr := validationJSON(c, err); handled {
			return herr
		}
		if errors.Is(err, repository.ErrStationNotFound) || errors.Is(err, repository.ErrRouteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update route"})
	}
	return c.JSON(http.StatusOK, route)
}

// DeleteRoute handles DELETE /v1/routes/:id.
func (h *AdminHandler) DeleteRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid route id"})
	}
	if err := h.Routes.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete route"})
	}
	return c.NoContent(http.StatusNoContent)
}
