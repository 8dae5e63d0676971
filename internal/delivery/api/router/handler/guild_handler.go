package handler

import (
	"log/slog"
	"net/http"
	"time"

	"guildbook/internal/delivery/api/response"
	"guildbook/internal/domain/entity"
	"guildbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderGuildPassword carries the guild password on requests without a body.
const HeaderGuildPassword = "X-Guild-Password"

// GuildHandlerParams holds dependencies for GuildHandler, injected by Fx.
type GuildHandlerParams struct {
	fx.In

	GuildUC  usecase.GuildUsecase
	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// GuildHandler serves guild documents and guild logins.
type GuildHandler struct {
	guildUC  usecase.GuildUsecase
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewGuildHandler is the constructor for GuildHandler
func NewGuildHandler(params GuildHandlerParams) *GuildHandler {
	return &GuildHandler{
		guildUC:  params.GuildUC,
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// CreateGuildRequest is the body of POST /guilds.
type CreateGuildRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Password string `json:"password" validate:"required"`
}

// SaveGuildRequest is the body of PUT /guilds/:id.
type SaveGuildRequest struct {
	Password string             `json:"password" validate:"required"`
	State    *entity.GuildState `json:"state" validate:"required"`
}

// GuildLoginRequest is the body of POST /guilds/login.
type GuildLoginRequest struct {
	GuildID  string `json:"guildId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GuildLoginResponse is returned by a successful guild login.
type GuildLoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Guild     *entity.GuildState `json:"guild"`
}

// ListGuilds returns the most recently updated guilds.
func (h *GuildHandler) ListGuilds(c echo.Context) error {
	summaries, err := h.guildUC.ListGuilds(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// CreateGuild founds a new guild.
func (h *GuildHandler) CreateGuild(c echo.Context) error {
	var req CreateGuildRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.guildUC.CreateGuild(c.Request().Context(), usecase.CreateGuildInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, state)
}

// SaveGuild replaces a guild snapshot, creating it on first save.
func (h *GuildHandler) SaveGuild(c echo.Context) error {
	var req SaveGuildRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	req.State.ID = c.Param("id")

	state, err := h.guildUC.SaveGuild(c.Request().Context(), usecase.SaveGuildInput{
		State:    req.State,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// DeleteGuild removes a guild. The password travels in X-Guild-Password.
func (h *GuildHandler) DeleteGuild(c echo.Context) error {
	password := c.Request().Header.Get(HeaderGuildPassword)
	if err := h.guildUC.DeleteGuild(c.Request().Context(), c.Param("id"), password); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Login opens a ledger session and returns its token with the guild state.
func (h *GuildHandler) Login(c echo.Context) error {
	var req GuildLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.ledgerUC.Login(c.Request().Context(), req.GuildID, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, GuildLoginResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		Guild:     out.State,
	})
}
