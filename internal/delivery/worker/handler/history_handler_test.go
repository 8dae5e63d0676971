package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guildbook/internal/domain/service"
	mockService "guildbook/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHistoryFixture(t *testing.T) (*echo.Echo, *mockService.MockEventArchiver) {
	t.Helper()

	archiver := mockService.NewMockEventArchiver(t)
	h := NewHistoryHandler(HistoryHandlerParams{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Archiver: archiver,
	})
	h.now = func() time.Time { return time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.GET("/history/:guildId", h.GuildDay)

	return e, archiver
}

func getHistory(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHistoryGuildDay(t *testing.T) {
	e, archiver := newHistoryFixture(t)
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	archiver.EXPECT().
		Events(mock.Anything, "g-1", day).
		Return([]*service.LedgerEvent{{EventID: "e-1", GuildID: "g-1", Operation: "finance.deposit"}}, nil)

	rec := getHistory(e, "/history/g-1?day=2026-10-17")

	require.Equal(t, http.StatusOK, rec.Code)
	var events []*service.LedgerEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "finance.deposit", events[0].Operation)
}

func TestHistoryDefaultsToToday(t *testing.T) {
	e, archiver := newHistoryFixture(t)
	archiver.EXPECT().
		Events(mock.Anything, "g-1", time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC)).
		Return([]*service.LedgerEvent{}, nil)

	rec := getHistory(e, "/history/g-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHistoryRejectsBadDay(t *testing.T) {
	e, _ := newHistoryFixture(t)

	rec := getHistory(e, "/history/g-1?day=17/10/2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryArchiveUnavailable(t *testing.T) {
	e, archiver := newHistoryFixture(t)
	archiver.EXPECT().
		Events(mock.Anything, "g-1", mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError)

	rec := getHistory(e, "/history/g-1")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
