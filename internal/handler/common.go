package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/domain"
)

// getUserID extracts the user_id claim from the echo context and
// converts it to uint64. JWT numeric claims arrive as float64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id path parameter; zero is rejected.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// pageParams reads ?page and ?page_size with defaults and caps.
func pageParams(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// validationJSON renders a *domain.ValidationError as a 400 response
// attributing the failure to its field. It returns false when err is
// not a validation error so the caller can keep dispatching.
func validationJSON(c echo.Context, err error) (bool, error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false, nil
	}
	return true, c.JSON(http.StatusBadRequest, echo.Map{
		"error": ve.Message,
		"field": ve.Field,
	})
}

// pagedResponse is the envelope shared by paginated listings.
type pagedResponse struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
