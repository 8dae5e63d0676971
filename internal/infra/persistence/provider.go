// Package persistence selects the storage backend configured for guild documents.
package persistence

import (
	"context"
	"log/slog"

	"guildbook/config"
	"guildbook/internal/domain/constants"
	"guildbook/internal/domain/repository"
	"guildbook/internal/errors"
	"guildbook/internal/infra/persistence/blobstore"
	"guildbook/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies of the storage provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend to fx.
type Result struct {
	fx.Out

	Guilds       repository.GuildRepository
	Admin        repository.AdminRepository
	Transactions repository.TransactionManager
}

// NewRepositories builds the repositories for storage.provider.
func NewRepositories(params Params) (Result, error) {
	provider := constants.StorageProviderPostgres
	if params.Config.Storage != nil && params.Config.Storage.Provider != "" {
		provider = params.Config.Storage.Provider
	}

	switch provider {
	case constants.StorageProviderPostgres:
		if params.Config.Postgres == nil {
			return Result{}, errors.New("postgres storage selected but postgres config is missing")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			Guilds:       postgres.NewGuildRepository(db),
			Admin:        postgres.NewAdminRepository(db),
			Transactions: postgres.NewTransactionManager(db),
		}, nil

	case constants.StorageProviderBlob:
		bucketURL := ""
		if params.Config.Storage != nil {
			bucketURL = params.Config.Storage.BucketURL
		}
		bucket, err := blobstore.OpenBucket(context.Background(), bucketURL)
		if err != nil {
			return Result{}, err
		}
		store := blobstore.NewStore(bucket)
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Info("Using blob storage for guild documents", slog.String("bucket", bucketURL))

		return Result{
			Guilds:       store.GuildRepository(),
			Admin:        store.AdminRepository(),
			Transactions: store.TransactionManager(),
		}, nil

	default:
		return Result{}, errors.Errorf("unsupported storage provider: %s", provider)
	}
}
