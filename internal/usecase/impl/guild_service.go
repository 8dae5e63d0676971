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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGuildListLimit = 50

// guildService implements the GuildUsecase interface.
type guildService struct {
	txManager repository.TransactionManager
	guildRepo repository.GuildRepository
	hasher    service.PasswordHasher
	admin     usecase.AdminUsecase
	listLimit int
	newID     func() string
	logger    *slog.Logger
}

// GuildServiceParams holds dependencies for GuildService, injected by Fx.
type GuildServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GuildRepo repository.GuildRepository
	Hasher    service.PasswordHasher
	Admin     usecase.AdminUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGuildService is the constructor for guildService.
func NewGuildService(params GuildServiceParams) usecase.GuildUsecase {
	listLimit := defaultGuildListLimit
	if params.Config != nil && params.Config.Guild != nil && params.Config.Guild.ListLimit > 0 {
		listLimit = params.Config.Guild.ListLimit
	}

	return &guildService{
		txManager: params.TxManager,
		guildRepo: params.GuildRepo,
		hasher:    params.Hasher,
		admin:     params.Admin,
		listLimit: listLimit,
		newID:     uuid.NewString,
		logger:    params.Logger,
	}
}

func (srv *guildService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *guildService) findRecord(ctx context.Context, repo repository.GuildRepository, id string) (*entity.GuildRecord, error) {
	record, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuildNotFound) {
			return nil, errors.WithStack(domainerrors.ErrGuildNotFound)
		}

		return nil, errors.Wrap(err, "failed to find guild")
	}

	return record, nil
}

// GetGuild returns the guild state when the password grants access.
func (srv *guildService) GetGuild(ctx context.Context, id, password string) (*entity.GuildState, error) {
	record, err := srv.findRecord(ctx, srv.guildRepo, id)
	if err != nil {
		return nil, err
	}
	if err := checkGuildAccess(ctx, srv.hasher, srv.admin, record, password); err != nil {
		srv.log(ctx).Warn("Rejected guild access", slog.String("guild_id", id))

		return nil, err
	}

	return record.State, nil
}

// ListGuilds returns the most recently updated guilds.
func (srv *guildService) ListGuilds(ctx context.Context) ([]*entity.GuildSummary, error) {
	summaries, err := srv.guildRepo.ListRecent(ctx, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guilds")
	}

	return summaries, nil
}

// SaveGuild creates or replaces a guild. Creating stores the password hash;
// updating requires the stored guild password or the admin password.
func (srv *guildService) SaveGuild(ctx context.Context, input usecase.SaveGuildInput) (*entity.GuildState, error) {
	if input.State == nil || strings.TrimSpace(input.State.ID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("guild id is required")
	}
	state := input.State.Clone()
	entity.Normalize(state)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guildRepo := repoFactory.NewGuildRepository()

		record, err := guildRepo.FindByID(ctx, state.ID)
		switch {
		case errors.Is(err, repository.ErrGuildNotFound):
			if strings.TrimSpace(input.Password) == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("password is required to create a guild")
			}
			hash, hashErr := srv.hasher.Hash(input.Password)
			if hashErr != nil {
				return errors.Wrap(hashErr, "failed to hash guild password")
			}
			record = &entity.GuildRecord{ID: state.ID, PasswordHash: hash}
		case err != nil:
			return errors.Wrap(err, "failed to find guild")
		default:
			if accessErr := checkGuildAccess(ctx, srv.hasher, srv.admin, record, input.Password); accessErr != nil {
				return accessErr
			}
		}

		record.GuildName = state.GuildName
		record.State = state

		return guildRepo.Save(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Guild saved", slog.String("guild_id", state.ID))

	return state, nil
}

// CreateGuild founds a guild under a fresh id.
func (srv *guildService) CreateGuild(ctx context.Context, input usecase.CreateGuildInput) (*entity.GuildState, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("guild name is required")
	}

	return srv.SaveGuild(ctx, usecase.SaveGuildInput{
		State:    entity.NewGuildState(srv.newID(), name),
		Password: input.Password,
	})
}

// DeleteGuild removes a guild when the password grants access.
func (srv *guildService) DeleteGuild(ctx context.Context, id, password string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guildRepo := repoFactory.NewGuildRepository()

		record, err := srv.findRecord(ctx, guildRepo, id)
		if err != nil {
			return err
		}
		if err := checkGuildAccess(ctx, srv.hasher, srv.admin, record, password); err != nil {
			return err
		}

		if err := guildRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrGuildNotFound) {
				return errors.WithStack(domainerrors.ErrGuildNotFound)
			}

			return errors.Wrap(err, "failed to delete guild")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Guild deleted", slog.String("guild_id", id))

	return nil
}
