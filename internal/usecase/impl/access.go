// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/service"
	"guildbook/internal/usecase"

	"github.com/pkg/errors"
)

// checkGuildAccess accepts the guild's own password or the admin password.
func checkGuildAccess(
	ctx context.Context,
	hasher service.PasswordHasher,
	admin usecase.AdminUsecase,
	record *entity.GuildRecord,
	password string,
) error {
	if password != "" && record.PasswordHash != "" && hasher.Check(password, record.PasswordHash) {
		return nil
	}

	isAdmin, err := admin.VerifyPassword(ctx, password)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	return errors.WithStack(domainerrors.ErrAccessDenied)
}
