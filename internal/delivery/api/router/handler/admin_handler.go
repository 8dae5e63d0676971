package handler

import (
	"net/http"

	"guildbook/internal/delivery/api/response"
	"guildbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves master password operations.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// AdminLoginRequest is the body of POST /admin/login.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// ChangeAdminPasswordRequest is the body of PUT /admin/password.
type ChangeAdminPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=4"`
}

// ResetGuildPasswordRequest is the body of PUT /admin/guilds/:id/password.
type ResetGuildPasswordRequest struct {
	AdminPassword string `json:"adminPassword" validate:"required"`
	NewPassword   string `json:"newPassword" validate:"required"`
}

// Login checks the admin password.
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.Login(c.Request().Context(), req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"authenticated": true})
}

// ChangePassword replaces the admin password.
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req ChangeAdminPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.ChangePassword(c.Request().Context(), req.OldPassword, req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ResetGuildPassword sets a new password on a guild.
func (h *AdminHandler) ResetGuildPassword(c echo.Context) error {
	var req ResetGuildPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.adminUC.ResetGuildPassword(c.Request().Context(), req.AdminPassword, c.Param("id"), req.NewPassword)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
