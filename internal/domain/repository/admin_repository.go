package repository

import (
	"context"

	"guildbook/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrAdminNotFound is returned before the admin credential is bootstrapped.
	ErrAdminNotFound = errors.New("admin credential not found")
)

// AdminRepository persists the single master credential.
type AdminRepository interface {
	// Get returns the stored admin credential.
	Get(ctx context.Context) (*entity.AdminCredential, error)

	// Save replaces the admin credential.
	Save(ctx context.Context, cred *entity.AdminCredential) error
}
