package impl

import (
	"context"
	"log/slog"
	"strings"

	"guildbook/config"
	deliverycontext "guildbook/internal/delivery/context"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/repository"
	"guildbook/internal/domain/service"
	"guildbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	adminRepo       repository.AdminRepository
	hasher          service.PasswordHasher
	defaultPassword string
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdminRepo repository.AdminRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	defaultPassword := ""
	if params.Config != nil && params.Config.Admin != nil {
		defaultPassword = params.Config.Admin.DefaultPassword
	}

	return &adminService{
		txManager:       params.TxManager,
		adminRepo:       params.AdminRepo,
		hasher:          params.Hasher,
		defaultPassword: defaultPassword,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// credential loads the admin credential, storing the configured default on first use.
// It returns nil when neither a stored credential nor a default exists.
func (srv *adminService) credential(ctx context.Context, repo repository.AdminRepository) (*entity.AdminCredential, error) {
	cred, err := repo.Get(ctx)
	if err == nil {
		return cred, nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return nil, errors.Wrap(err, "failed to load admin credential")
	}
	if srv.defaultPassword == "" {
		return nil, nil
	}

	hash, err := srv.hasher.Hash(srv.defaultPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash default admin password")
	}
	cred = &entity.AdminCredential{PasswordHash: hash}
	if err := repo.Save(ctx, cred); err != nil {
		return nil, errors.Wrap(err, "failed to bootstrap admin credential")
	}
	srv.log(ctx).Info("Admin credential bootstrapped from configuration")

	return cred, nil
}

// VerifyPassword reports whether password is the admin password.
func (srv *adminService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}

	cred, err := srv.credential(ctx, srv.adminRepo)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, nil
	}

	return srv.hasher.Check(password, cred.PasswordHash), nil
}

// Login checks the admin password.
func (srv *adminService) Login(ctx context.Context, password string) error {
	ok, err := srv.VerifyPassword(ctx, password)
	if err != nil {
		return err
	}
	if !ok {
		srv.log(ctx).Warn("Rejected admin login")

		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return nil
}

// ChangePassword replaces the admin password.
func (srv *adminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("new password is required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		cred, err := srv.credential(ctx, adminRepo)
		if err != nil {
			return err
		}
		if cred == nil || !srv.hasher.Check(oldPassword, cred.PasswordHash) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		hash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new admin password")
		}

		return adminRepo.Save(ctx, &entity.AdminCredential{PasswordHash: hash})
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Admin password changed")

	return nil
}

// ResetGuildPassword sets a new password on a guild after checking the admin password.
func (srv *adminService) ResetGuildPassword(ctx context.Context, adminPassword, guildID, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("new password is required")
	}
	if err := srv.Login(ctx, adminPassword); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guildRepo := repoFactory.NewGuildRepository()

		record, err := guildRepo.FindByID(ctx, guildID)
		if err != nil {
			if errors.Is(err, repository.ErrGuildNotFound) {
				return errors.WithStack(domainerrors.ErrGuildNotFound)
			}

			return errors.Wrap(err, "failed to find guild")
		}

		hash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash guild password")
		}
		record.PasswordHash = hash

		return guildRepo.Save(ctx, record)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Guild password reset by admin", slog.String("guild_id", guildID))

	return nil
}
