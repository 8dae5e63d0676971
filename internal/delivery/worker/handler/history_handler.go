package handler

import (
	"log/slog"
	"net/http"
	"time"

	"guildbook/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dayLayout = "2006-01-02"

// HistoryHandler serves archived ledger events to operators on the worker network.
type HistoryHandler struct {
	archiver service.EventArchiver
	logger   *slog.Logger
	now      func() time.Time
}

// HistoryHandlerParams holds dependencies for the HistoryHandler
type HistoryHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Archiver service.EventArchiver
}

// NewHistoryHandler creates a handler reading the event archive
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		archiver: params.Archiver,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// GuildDay returns the events archived for a guild on ?day=YYYY-MM-DD (UTC),
// defaulting to today.
func (h *HistoryHandler) GuildDay(c echo.Context) error {
	guildID := c.Param("guildId")
	if guildID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "guild id is required"})
	}

	day := h.now().UTC()
	if raw := c.QueryParam("day"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "day must be YYYY-MM-DD"})
		}
		day = parsed
	}

	events, err := h.archiver.Events(c.Request().Context(), guildID, day)
	if err != nil {
		h.logger.Error("[Worker] Failed to read event archive",
			slog.String("guild_id", guildID),
			slog.String("day", day.Format(dayLayout)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, events)
}
