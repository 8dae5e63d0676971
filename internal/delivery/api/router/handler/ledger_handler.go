package handler

import (
	"log/slog"
	"net/http"

	"guildbook/internal/delivery/api/middleware"
	"guildbook/internal/delivery/api/response"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/ledger"
	"guildbook/internal/domain/service"
	"guildbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC  usecase.LedgerUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// LedgerHandler serves the operations of an open guild session.
type LedgerHandler struct {
	ledgerUC  usecase.LedgerUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC:  params.LedgerUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// MutationResponse pairs the guild state after an operation with the
// operation's own result, if it has one.
type MutationResponse struct {
	State  *entity.GuildState `json:"state"`
	Result any                `json:"result,omitempty"`
}

// RenameGuildRequest is the body of PUT /ledger/name.
type RenameGuildRequest struct {
	Name string `json:"name" validate:"required"`
}

// operation returns a value alongside its changes to the ledger.
type operation func(l *ledger.Ledger) (any, error)

// run applies fn inside the caller's session and writes the resulting state.
func (h *LedgerHandler) run(c echo.Context, name string, status int, fn operation) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionExpired)
	}

	var result any
	state, err := h.ledgerUC.Apply(c.Request().Context(), sessionID, name, func(l *ledger.Ledger) error {
		r, err := fn(l)
		result = r

		return err
	})
	if err != nil {
		if state != nil && errors.Is(err, domainerrors.ErrSaveFailed) {
			return response.HandleAppErrorWithData(c, err, MutationResponse{State: state, Result: result})
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, MutationResponse{State: state, Result: result})
}

// bindRun binds and validates req before running fn.
func (h *LedgerHandler) bindRun(c echo.Context, req any, name string, status int, fn operation) error {
	if err := bindAndValidate(c, req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.run(c, name, status, fn)
}

// GetState returns the session's current guild state.
func (h *LedgerHandler) GetState(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionExpired)
	}

	state, err := h.ledgerUC.State(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Logout closes the caller's session.
func (h *LedgerHandler) Logout(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.ledgerUC.Logout(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareCode renders a QR code that points at the session's guild.
func (h *LedgerHandler) ShareCode(c echo.Context) error {
	guildID, ok := middleware.GetGuildID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionExpired)
	}

	png, err := h.qrCodeSvc.GenerateGuildQR(guildID)
	if err != nil {
		h.logger.Error("Failed to generate guild QR code", slog.String("guild_id", guildID), slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RenameGuild changes the guild's display name.
func (h *LedgerHandler) RenameGuild(c echo.Context) error {
	var req RenameGuildRequest

	return h.bindRun(c, &req, "guild.rename", http.StatusOK, func(l *ledger.Ledger) (any, error) {
		return nil, l.RenameGuild(req.Name)
	})
}
