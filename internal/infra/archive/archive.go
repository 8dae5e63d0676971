// Package archive writes ledger events to a blob bucket as JSON lines, one
// object per guild and UTC day.
package archive

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"sync"
	"time"

	"guildbook/config"
	"guildbook/internal/domain/service"
	"guildbook/internal/errors"
	"guildbook/internal/infra/persistence/blobstore"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultPrefix = "ledger-events"
	dayLayout     = "2006-01-02"
	objectSuffix  = ".jsonl"
)

type blobArchiver struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger

	// objects are rewritten whole on every append
	mu sync.Mutex
}

// ArchiverParams holds dependencies for the EventArchiver, injected by Fx
type ArchiverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventArchiver opens the archive bucket from configuration.
func NewEventArchiver(params ArchiverParams) (service.EventArchiver, error) {
	var bucketURL, prefix string
	if cfg := params.Config.Archive; cfg != nil {
		bucketURL, prefix = cfg.BucketURL, cfg.Prefix
	}

	bucket, err := blobstore.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Archiving ledger events",
		slog.String("bucket_url", bucketURL),
		slog.String("prefix", prefix),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobArchiver(bucket, prefix, params.Logger), nil
}

// NewBlobArchiver archives into an already opened bucket.
func NewBlobArchiver(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.EventArchiver {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &blobArchiver{
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

func (a *blobArchiver) Archive(ctx context.Context, event *service.LedgerEvent) error {
	if event == nil || event.GuildID == "" {
		return errors.New("ledger event without guild id")
	}

	key := a.key(event.GuildID, event.OccurredAt)

	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.read(ctx, key)
	if err != nil {
		return err
	}

	events, err := decodeLines(existing)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", key)
	}
	for _, archived := range events {
		if archived.EventID == event.EventID {
			a.logger.Debug("[Archive] Event already archived", slog.String("event_id", event.EventID))

			return nil
		}
	}

	line, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	buf := bytes.NewBuffer(existing)
	buf.Write(line)
	buf.WriteByte('\n')

	if err := a.bucket.WriteAll(ctx, key, buf.Bytes(), &blob.WriterOptions{ContentType: "application/x-ndjson"}); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (a *blobArchiver) Events(ctx context.Context, guildID string, day time.Time) ([]*service.LedgerEvent, error) {
	data, err := a.read(ctx, a.key(guildID, day))
	if err != nil {
		return nil, err
	}

	events, err := decodeLines(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return events, nil
}

func (a *blobArchiver) key(guildID string, at time.Time) string {
	return path.Join(a.prefix, guildID, at.UTC().Format(dayLayout)+objectSuffix)
}

// read returns nil for missing objects.
func (a *blobArchiver) read(ctx context.Context, key string) ([]byte, error) {
	data, err := a.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func decodeLines(data []byte) ([]*service.LedgerEvent, error) {
	var events []*service.LedgerEvent

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event service.LedgerEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, scanner.Err()
}
