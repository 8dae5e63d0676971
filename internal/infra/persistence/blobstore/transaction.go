package blobstore

import (
	"context"
	"strings"

	"guildbook/internal/domain/repository"
	"guildbook/internal/errors"
)

type transactionManager struct {
	store *Store
}

// Execute stages every write made through the factory and applies them only
// when fn returns nil. Transactions on one store run one at a time.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	staged := newStagedObjects(tm.store)
	factory := &repositoryFactory{objects: staged, store: tm.store}

	if err := fn(factory); err != nil {
		return err
	}

	return staged.commit(ctx)
}

type repositoryFactory struct {
	objects objectStore
	store   *Store
}

func (f *repositoryFactory) NewGuildRepository() repository.GuildRepository {
	return &guildRepository{objects: f.objects, now: f.store.now}
}

func (f *repositoryFactory) NewAdminRepository() repository.AdminRepository {
	return &adminRepository{objects: f.objects, now: f.store.now}
}

// stagedObjects overlays pending writes and deletes on the bucket.
type stagedObjects struct {
	base    objectStore
	writes  map[string][]byte
	deletes map[string]struct{}
	order   []string
}

func newStagedObjects(base objectStore) *stagedObjects {
	return &stagedObjects{
		base:    base,
		writes:  make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

func (s *stagedObjects) read(ctx context.Context, key string) ([]byte, error) {
	if _, gone := s.deletes[key]; gone {
		return nil, errors.WithStack(errObjectNotFound)
	}
	if data, ok := s.writes[key]; ok {
		return data, nil
	}

	return s.base.read(ctx, key)
}

func (s *stagedObjects) write(_ context.Context, key string, data []byte) error {
	delete(s.deletes, key)
	s.writes[key] = data
	s.touch(key)

	return nil
}

func (s *stagedObjects) remove(ctx context.Context, key string) error {
	if _, err := s.read(ctx, key); err != nil {
		return err
	}
	delete(s.writes, key)
	s.deletes[key] = struct{}{}
	s.touch(key)

	return nil
}

func (s *stagedObjects) keys(ctx context.Context, prefix string) ([]string, error) {
	baseKeys, err := s.base.keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(baseKeys))
	for _, k := range baseKeys {
		set[k] = struct{}{}
	}
	for k := range s.writes {
		if strings.HasPrefix(k, prefix) {
			set[k] = struct{}{}
		}
	}
	for k := range s.deletes {
		delete(set, k)
	}

	return sortedKeys(set), nil
}

func (s *stagedObjects) touch(key string) {
	for _, k := range s.order {
		if k == key {
			return
		}
	}
	s.order = append(s.order, key)
}

func (s *stagedObjects) commit(ctx context.Context) error {
	for _, key := range s.order {
		if data, ok := s.writes[key]; ok {
			if err := s.base.write(ctx, key, data); err != nil {
				return errors.Wrap(err, "failed to commit transaction")
			}

			continue
		}
		if _, ok := s.deletes[key]; ok {
			if err := s.base.remove(ctx, key); err != nil && !errors.Is(err, errObjectNotFound) {
				return errors.Wrap(err, "failed to commit transaction")
			}
		}
	}

	return nil
}
