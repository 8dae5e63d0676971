// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"
	"strconv"

	"guildbook/internal/delivery/api/response"
	domainerrors "guildbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	return c.Validate(req)
}

// queryInt reads an optional positive integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a positive integer")
	}

	return v, nil
}
