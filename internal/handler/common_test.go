package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/railway-ticket-service/internal/domain"
	"github.com/iliyamo/railway-ticket-service/internal/model"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    uint64
		wantErr bool
	}{
		{name: "float64 from jwt claims", value: float64(42), want: 42},
		{name: "uint64", value: uint64(7), want: 7},
		{name: "numeric string", value: "9", want: 9},
		{name: "missing", value: nil, wantErr: true},
		{name: "garbage string", value: "abc", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, "/")
			if tc.value != nil {
				c.Set("user_id", tc.value)
			}
			got, err := getUserID(c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathID(t *testing.T) {
	c, _ := newTestContext(t, "/")
	c.SetParamNames("id")
	c.SetParamValues("15")
	id, err := pathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		c, _ := newTestContext(t, "/")
		c.SetParamNames("id")
		c.SetParamValues(bad)
		_, err := pathID(c, "id")
		assert.Error(t, err, "value %q must be rejected", bad)
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", target: "/", wantPage: 1, wantPageSize: 20},
		{name: "explicit values", target: "/?page=3&page_size=50", wantPage: 3, wantPageSize: 50},
		{name: "page size capped", target: "/?page_size=1000", wantPage: 1, wantPageSize: 100},
		{name: "invalid values ignored", target: "/?page=-1&page_size=abc", wantPage: 1, wantPageSize: 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, tc.target)
			page, pageSize := pageParams(c)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
		})
	}
}

func TestValidationJSON(t *testing.T) {
	c, rec := newTestContext(t, "/")
	err := domain.ValidateTicket(6, 1, model.Train{CargoNum: 5, PlacesInCargo: 20})
	require.Error(t, err)

	handled, herr := validationJSON(c, err)
	require.True(t, handled)
	require.NoError(t, herr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cargo", body["field"])
	assert.NotEmpty(t, body["error"])

	// A foreign error is left for the caller to dispatch.
	c2, _ := newTestContext(t, "/")
	handled, herr = validationJSON(c2, assert.AnError)
	assert.False(t, handled)
	assert.NoError(t, herr)
}
