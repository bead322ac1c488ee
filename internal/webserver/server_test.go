package webserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/internal/domain"
)

func setup(t *testing.T) *app.Application {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.System.Location = "UTC"
	a := app.NewApplication(cfg)
	require.NoError(t, a.Init(cfg))
	Init(a)
	return a
}

func TestHealthz(t *testing.T) {
	setup(t)
	rec := httptest.NewRecorder()
	Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestApiRoutesGetAppContext(t *testing.T) {
	a := setup(t)
	ApiGET("/ping", func(c echo.Context) error {
		appCtx, ok := c.Get(AppContextKey).(app.AppContext)
		require.True(t, ok)
		assert.Same(t, a, appCtx)
		return c.String(http.StatusOK, "pong")
	})
	rec := httptest.NewRecorder()
	Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	setup(t)
	rec := httptest.NewRecorder()
	Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestPanicIsRecovered(t *testing.T) {
	setup(t)
	ApiGET("/boom", func(c echo.Context) error { panic("boom") })
	rec := httptest.NewRecorder()
	Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
	assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func TestValidator(t *testing.T) {
	err := NewValidator().Validate(&domain.Category{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "title")
}
