package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/railway-ticket-service/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"
	e := echo.New()

	at, err := utils.NewAccessToken(secret, 42, "CUSTOMER", 5)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + at.Token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := JWTAuth(secret)(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	e := echo.New()
	at, err := utils.NewAccessToken("other-secret", 42, "CUSTOMER", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JWTAuth("test-secret")(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthSetsClaims(t *testing.T) {
	const secret = "test-secret"
	e := echo.New()
	at, err := utils.NewAccessToken(secret, 7, "ADMIN", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUser any
	var gotRole any
	inner := func(c echo.Context) error {
		gotUser = c.Get("user_id")
		gotRole = c.Get("role")
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, JWTAuth(secret)(inner)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Numeric JWT claims round-trip as float64.
	assert.Equal(t, float64(7), gotUser)
	assert.Equal(t, "ADMIN", gotRole)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		role       any
		allowed    []string
		wantStatus int
	}{
		{name: "role allowed", role: "ADMIN", allowed: []string{"ADMIN"}, wantStatus: http.StatusOK},
		{name: "any of several", role: "CUSTOMER", allowed: []string{"ADMIN", "CUSTOMER"}, wantStatus: http.StatusOK},
		{name: "role not allowed", role: "CUSTOMER", allowed: []string{"ADMIN"}, wantStatus: http.StatusForbidden},
		{name: "role missing", role: nil, allowed: []string{"ADMIN"}, wantStatus: http.StatusForbidden},
		{name: "role not a string", role: 12, allowed: []string{"ADMIN"}, wantStatus: http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			require.NoError(t, RequireRole(tc.allowed...)(okHandler)(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
