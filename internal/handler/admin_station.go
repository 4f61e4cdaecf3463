package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

type stationBody struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (b *stationBody) validate() (string, bool) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return "name is required", false
	}
	if b.Latitude == nil || b.Longitude == nil {
		return "latitude and longitude are required", false
	}
	return "", true
}

// CreateStation handles POST /v1/stations.
func (h *AdminHandler) CreateStation(c echo.Context) error {
	var body stationBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	s := &model.Station{Name: body.Name, Latitude: *body.Latitude, Longitude: *body.Longitude}
	if err := h.Stations.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create station"})
	}
	return c.JSON(http.StatusCreated, toStationView(*s))
}

// UpdateStation handles PUT /v1/stations/:id.
func (h *AdminHandler) UpdateStation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	var body stationBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	s := &model.Station{ID: id, Name: body.Name, Latitude: *body.Latitude, Longitude: *body.Longitude}
	if err := h.Stations.Update(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update station"})
	}
	return c.JSON(http.StatusOK, toStationView(*s))
}

// DeleteStation handles DELETE /v1/stations/:id. Routes through the
// station are removed by the cascade.
func (h *AdminHandler) DeleteStation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	if err := h.Stations.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete station"})
	}
	return c.NoContent(http.StatusNoContent)
}
