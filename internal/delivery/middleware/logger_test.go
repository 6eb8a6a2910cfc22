package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"proximity/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveLogged(debug bool, handler echo.HandlerFunc) (*httptest.ResponseRecorder, string) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	e := echo.New()
	e.Use(m.Handle)
	e.POST("/push", handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))

	return rec, buf.String()
}

func TestLoggerMiddleware_QuietForSuccessOutsideDebug(t *testing.T) {
	rec, logged := serveLogged(false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logged)
}

func TestLoggerMiddleware_LogsServerErrorsWithFinalStatus(t *testing.T) {
	rec, logged := serveLogged(false, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "ledger unavailable")
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, logged, "level=ERROR")
	assert.Contains(t, logged, "status=503")
	assert.Contains(t, logged, "ledger unavailable")
}

func TestLoggerMiddleware_DebugLogsEverything(t *testing.T) {
	rec, logged := serveLogged(true, func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, logged, "level=INFO")
	assert.Contains(t, logged, "status=202")
	assert.Contains(t, logged, "uri=/push")
}
