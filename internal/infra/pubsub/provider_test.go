package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guildbook/config"
	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.LedgerEvent {
	return &service.LedgerEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		GuildID:   "guild-1",
		GuildName: "Taverna",
		Operation: "deposit",
		Persisted: true,
		Wallet:    entity.Wallet{TS: 10},
		Entries: []*entity.LogEntry{
			{ID: "log-1", Category: entity.LogDeposito, Value: 10, MemberID: "system", MemberName: "Sistema"},
		},
		OccurredAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishLedgerEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishLedgerEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "guild-1", received.Message.Attributes["guild_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.LedgerEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "deposit", event.Operation)
	require.Len(t, event.Entries, 1)
	assert.Equal(t, entity.LogDeposito, event.Entries[0].Category)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishLedgerEvent(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "none", cfg: &config.PubSubConfig{Provider: "none"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			if _, ok := publisher.(*noopPublisher); ok {
				assert.NoError(t, publisher.PublishLedgerEvent(context.Background(), testEvent()))
			}
		})
	}
}
