package pubsub

import (
	"context"
	"log/slog"

	"guildbook/config"
	"guildbook/internal/domain/constants"
	"guildbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultTopicID is used when pubsub.topicId is not configured.
const DefaultTopicID = "guild-ledger-events"

// noopPublisher drops events when publishing is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLedgerEvent(ctx context.Context, event *service.LedgerEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.String("operation", event.Operation),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the ledger event publisher named by pubsub.provider
// and closes it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("PubSub not configured, ledger events will not be archived")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ledger event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Pushing ledger events to local archiver",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		topicID := cfg.TopicID
		if topicID == "" {
			topicID = DefaultTopicID
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, topicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
