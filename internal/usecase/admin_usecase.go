package usecase

import "context"

// AdminUsecase defines operations guarded by the master password.
type AdminUsecase interface {
	// Login checks the admin password.
	Login(ctx context.Context, password string) error
	// ChangePassword replaces the admin password after checking the old one.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	// ResetGuildPassword sets a new password on a guild.
	ResetGuildPassword(ctx context.Context, adminPassword, guildID, newPassword string) error
	// VerifyPassword reports whether password is the admin password without failing on mismatch.
	VerifyPassword(ctx context.Context, password string) (bool, error)
}
