package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"guildbook/config"
	"guildbook/internal/domain/lifecycle"
	"guildbook/internal/errors"
	"guildbook/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params holds the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the guild database. The schema is migrated and the pool monitor
// started when the app starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Snapshot saves are single statements; multi-step work goes through Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the guild and admin tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.GuildModel{}, &model.AdminCredentialModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}

// monitorDBPool warns when requests queue for a connection. Every ledger
// command ends in a snapshot save, so pool waits show up as slow commands.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if attrs, level, waited := poolWaitAttrs(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitAttrs describes the waits between two pool snapshots. waited is false
// when no request had to wait.
func poolWaitAttrs(prev, cur sql.DBStats) (attrs []slog.Attr, level slog.Level, waited bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return nil, slog.LevelDebug, false
	}
	waited = true
	wait := cur.WaitDuration - prev.WaitDuration

	level = slog.LevelDebug
	if wait >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("wait", wait),
		slog.Duration("avgWait", wait/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}, level, waited
}
