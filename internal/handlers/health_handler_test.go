package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

func healthBody(t *testing.T, db HealthChecker) map[string]interface{} {
	t.Helper()
	app := fiber.New()
	app.Get("/health", Health("database", db))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	assert.Equal(t, "healthy", healthBody(t, stubChecker{})["database"])
	assert.Equal(t, "unhealthy", healthBody(t, stubChecker{err: errors.New("down")})["database"])

	body := healthBody(t, nil)
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body, "database")
}
