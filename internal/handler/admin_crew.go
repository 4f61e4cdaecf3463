package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

type crewBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (b *crewBody) validate() (string, bool) {
	b.FirstName = strings.TrimSpace(b.FirstName)
	b.LastName = strings.TrimSpace(b.LastName)
	if b.FirstName == "" || b.LastName == "" {
		return "first_name and last_name are required", false
	}
	return "", true
}

// CreateCrew handles POST /v1/crew.
func (h *AdminHandler) CreateCrew(c echo.Context) error {
	var body crewBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m := &model.Crew{FirstName: body.FirstName, LastName: body.LastName}
	if err := h.Crew.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create crew member"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": m.ID, "full_name": m.FullName()})
}

// UpdateCrew handles PUT /v1/crew/:id.
func (h *AdminHandler) UpdateCrew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crew id"})
	}
	var body crewBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m := &model.Crew{ID: id, FirstName: body.FirstName, LastName: body.LastName}
	if err := h.Crew.Update(c.Request().Context(), m); err != nil {
		if errors.Is(err, repository.ErrCrewNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "crew member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update crew member"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": m.ID, "full_name": m.FullName()})
}

// DeleteCrew handles DELETE /v1/crew/:id.
func (h *AdminHandler) DeleteCrew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crew id"})
	}
	if err := h.Crew.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCrewNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "crew member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete crew member"})
	}
	return c.NoContent(http.StatusNoContent)
}
