package blobstore

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"guildbook/internal/domain/repository"
	"guildbook/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const (
	guildPrefix = "guilds/"
	guildSuffix = ".json"
	adminKey    = "admin.json"
)

var errObjectNotFound = errors.New("object not found")

// objectStore is the minimal key/value surface the repositories need.
type objectStore interface {
	read(ctx context.Context, key string) ([]byte, error)
	write(ctx context.Context, key string, data []byte) error
	remove(ctx context.Context, key string) error
	keys(ctx context.Context, prefix string) ([]string, error)
}

// Store owns the bucket and hands out repositories and transactions over it.
type Store struct {
	bucket *blob.Bucket
	now    func() time.Time
	txMu   sync.Mutex
}

// NewStore wraps an opened bucket.
func NewStore(bucket *blob.Bucket) *Store {
	return &Store{
		bucket: bucket,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GuildRepository returns a guild repository writing straight to the bucket.
func (s *Store) GuildRepository() repository.GuildRepository {
	return &guildRepository{objects: s, now: s.now, lock: &s.txMu}
}

// AdminRepository returns an admin repository writing straight to the bucket.
func (s *Store) AdminRepository() repository.AdminRepository {
	return &adminRepository{objects: s, now: s.now}
}

// TransactionManager returns a manager that stages writes and applies them on commit.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

func (s *Store) read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(errObjectNotFound)
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *Store) write(ctx context.Context, key string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return errors.WithStack(errObjectNotFound)
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *Store) keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s", prefix)
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

func guildKey(id string) string {
	return guildPrefix + id + guildSuffix
}

func isGuildKey(key string) bool {
	return strings.HasPrefix(key, guildPrefix) && strings.HasSuffix(key, guildSuffix)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
