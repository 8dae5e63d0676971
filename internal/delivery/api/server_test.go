package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guildbook/config"
	"guildbook/internal/delivery/api/router/handler"
	deliverycontext "guildbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(cfg *config.Config) *echo.Echo {
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = "1KB"
	}

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCORSPreflightAllowsGuildPassword(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.AllowOrigins = []string{"https://mesa.example"}
	e := newTestEcho(cfg)
	e.DELETE("/api/v1/guilds/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/guilds/g-1", nil)
	req.Header.Set(echo.HeaderOrigin, "https://mesa.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, handler.HeaderGuildPassword)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://mesa.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), handler.HeaderGuildPassword)
}

func TestResponsesCarryRequestID(t *testing.T) {
	e := newTestEcho(&config.Config{})
	e.GET("/health", handler.HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestStateIsCompressed(t *testing.T) {
	e := newTestEcho(&config.Config{})
	e.GET("/api/v1/ledger", func(c echo.Context) error {
		return c.String(http.StatusOK, strings.Repeat("membro ", 200))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get(echo.HeaderContentEncoding))
}

func TestShareCodeIsNotCompressed(t *testing.T) {
	e := newTestEcho(&config.Config{})
	e.GET("/api/v1/ledger/qr", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "image/png", []byte(strings.Repeat("p", 2048)))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/qr", nil)
	req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderContentEncoding))
}

func TestBodyLimit(t *testing.T) {
	e := newTestEcho(&config.Config{})
	e.POST("/api/v1/guilds", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/guilds", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
