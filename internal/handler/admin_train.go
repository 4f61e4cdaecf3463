package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/model"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
)

// CreateTrainType handles POST /v1/train-types. Type names are
// unique.
func (h *AdminHandler) CreateTrainType(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	t := &model.TrainType{Name: body.Name}
	if err := h.TrainTypes.Create(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "train type already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create train type"})
	}
	return c.JSON(http.StatusCreated, trainTypeView{ID: t.ID, Name: t.Name})
}

// UpdateTrainType handles PUT /v1/train-types/:id.
func (h *AdminHandler) UpdateTrainType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train type id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	t := &model.TrainType{ID: id, Name: body.Name}
	if err := h.TrainTypes.Update(c.Request().Context(), t); err != nil {
		switch {
		case errors.Is(err, repository.ErrTrainTypeNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train type not found"})
		case errors.Is(err, repository.ErrDuplicateName):
			return c.JSON(http.StatusConflict, echo.Map{"error": "train type already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update train type"})
	}
	return c.JSON(http.StatusOK, trainTypeView{ID: t.ID, Name: t.Name})
}

// DeleteTrainType handles DELETE /v1/train-types/:id.
func (h *AdminHandler) DeleteTrainType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train type id"})
	}
	if err := h.TrainTypes.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTrainTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete train type"})
	}
	return c.NoContent(http.StatusNoContent)
}

// trainView is the JSON shape of a train in admin responses. The
// seat total is derived from the cargo layout.
type trainView struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	CargoNum      int64   `json:"cargo_num"`
	PlacesInCargo int64   `json:"places_in_cargo"`
	TrainType     uint64  `json:"train_type"`
	SeatsInTrain  int64   `json:"seats_in_train"`
	Image         *string `json:"image,omitempty"`
}

func toTrainView(t model.Train) trainView {
	return trainView{
		ID:            t.ID,
		Name:          t.Name,
		CargoNum:      t.CargoNum,
		PlacesInCargo: t.PlacesInCargo,
		TrainType:     t.TrainTypeID,
		SeatsInTrain:  t.SeatsInTrain(),
		Image:         t.ImagePath,
	}
}

type trainBody struct {
	Name          string `json:"name"`
	CargoNum      int64  `json:"cargo_num"`
	PlacesInCargo int64  `json:"places_in_cargo"`
	TrainType     uint64 `json:"train_type"`
}

func (b *trainBody) validate() (string, bool) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return "name is required", false
	}
	if b.CargoNum < 1 || b.PlacesInCargo < 1 {
		return "cargo_num and places_in_cargo must be positive", false
	}
	if b.TrainType == 0 {
		return "train_type is required", false
	}
	return "", true
}

// CreateTrain handles POST /v1/trains. cargo_num is unique across
// trains; a duplicate surfaces as 409.
func (h *AdminHandler) CreateTrain(c echo.Context) error {
	var body trainBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if _, err := h.TrainTypes.GetByID(c.Request().Context(), body.TrainType); err != nil {
		if errors.Is(err, repository.ErrTrainTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t := &model.Train{Name: body.Name, CargoNum: body.CargoNum, PlacesInCargo: body.PlacesInCargo, TrainTypeID: body.TrainType}
	if err := h.Trains.Create(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cargo_num already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create train"})
	}
	return c.JSON(http.StatusCreated, toTrainView(*t))
}

// UpdateTrain handles PUT /v1/trains/:id.
func (h *AdminHandler) UpdateTrain(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}
	var body trainBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := body.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	existing, err := h.Trains.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t := &model.Train{ID: id, Name: body.Name, CargoNum: body.CargoNum, PlacesInCargo: body.PlacesInCargo, TrainTypeID: body.TrainType, ImagePath: existing.ImagePath}
	if err := h.Trains.Update(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cargo_num already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update train"})
	}
	return c.JSON(http.StatusOK, toTrainView(*t))
}

// DeleteTrain handles DELETE /v1/trains/:id.
func (h *AdminHandler) DeleteTrain(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}
	if err := h.Trains.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete train"})
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadTrainImage handles POST /v1/trains/:id/image. The file is
// stored under uploads/trains with a generated name and the path is
// recorded on the train row.
func (h *AdminHandler) UploadTrainImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}
	if _, err := h.Trains.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read image"})
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("train-%d-%d%s", id, time.Now().UTC().Unix(), ext)
	dir := filepath.Join("uploads", "trains")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store image"})
	}
	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store image"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store image"})
	}

	if err := h.Trains.SetImagePath(c.Request().Context(), id, path); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record image path"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "image": path})
}
