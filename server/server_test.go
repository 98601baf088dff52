package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	analyticsHandler "github.com/dinerozz/snippet-analytics-backend/internal/handler/analytics"
	userHandler "github.com/dinerozz/snippet-analytics-backend/internal/handler/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubCache struct {
	err error
}

func (s stubCache) Health(ctx context.Context) error {
	return s.err
}

func testRouterWithCache(cache healthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return setupRouter(&RouterHandler{
		userHandler:      userHandler.NewUserHandler(nil),
		analyticsHandler: analyticsHandler.NewAnalyticsHandler(nil),
		cache:            cache,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, "https://snippets.example.com")
}

func testRouter() *gin.Engine {
	return testRouterWithCache(nil)
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealthReportsCacheOutage(t *testing.T) {
	w := httptest.NewRecorder()
	testRouterWithCache(stubCache{err: errors.New("connection refused")}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestHealthWithReachableCache(t *testing.T) {
	w := httptest.NewRecorder()
	testRouterWithCache(stubCache{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestAnalyticsRoutesRequireToken(t *testing.T) {
	for _, path := range []string{
		"/api/v1/analytics/home",
		"/api/v1/analytics/users/22222222-2222-2222-2222-222222222222/series",
		"/api/v1/analytics/users/22222222-2222-2222-2222-222222222222/skills/history",
		"/api/v1/analytics/teams/22222222-2222-2222-2222-222222222222/series",
		"/api/v1/analytics/teams/22222222-2222-2222-2222-222222222222/summary",
		"/api/v1/analytics/companies/22222222-2222-2222-2222-222222222222/skills/matrix",
		"/api/v1/users/profile",
	} {
		w := httptest.NewRecorder()
		testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCORS(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analytics/home", nil)
	req.Header.Set("Origin", "https://snippets.example.com")
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://snippets.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
