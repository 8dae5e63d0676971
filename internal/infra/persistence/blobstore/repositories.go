package blobstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/repository"
	"guildbook/internal/errors"
)

type guildRepository struct {
	objects objectStore
	now     func() time.Time
	// lock is the store's transaction lock; nil inside a transaction, which already holds it.
	lock sync.Locker
}

func (r *guildRepository) FindByID(ctx context.Context, id string) (*entity.GuildRecord, error) {
	data, err := r.objects.read(ctx, guildKey(id))
	if err != nil {
		if errors.Is(err, errObjectNotFound) {
			return nil, errors.WithStack(repository.ErrGuildNotFound)
		}

		return nil, err
	}

	return decodeGuild(data)
}

func (r *guildRepository) Save(ctx context.Context, record *entity.GuildRecord) error {
	now := r.now()
	stored := *record
	if stored.State == nil {
		stored.State = entity.NewGuildState(record.ID, record.GuildName)
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
		if existing, err := r.FindByID(ctx, record.ID); err == nil {
			stored.CreatedAt = existing.CreatedAt
		}
	}
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return errors.Wrap(err, "failed to encode guild")
	}
	if err := r.objects.write(ctx, guildKey(record.ID), data); err != nil {
		return err
	}

	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = stored.UpdatedAt

	return nil
}

// SaveState rewrites name and state of an existing document and keeps the
// stored password hash and creation time.
func (r *guildRepository) SaveState(ctx context.Context, id, guildName string, state *entity.GuildState) error {
	if r.lock != nil {
		r.lock.Lock()
		defer r.lock.Unlock()
	}

	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	existing.GuildName = guildName
	if state != nil {
		existing.State = state
	}
	existing.UpdatedAt = r.now()

	data, err := json.Marshal(existing)
	if err != nil {
		return errors.Wrap(err, "failed to encode guild")
	}

	return r.objects.write(ctx, guildKey(id), data)
}

func (r *guildRepository) Delete(ctx context.Context, id string) error {
	if err := r.objects.remove(ctx, guildKey(id)); err != nil {
		if errors.Is(err, errObjectNotFound) {
			return errors.WithStack(repository.ErrGuildNotFound)
		}

		return err
	}

	return nil
}

// ListRecent reads every guild document; buckets carry no secondary index.
func (r *guildRepository) ListRecent(ctx context.Context, limit int) ([]*entity.GuildSummary, error) {
	keys, err := r.objects.keys(ctx, guildPrefix)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.GuildSummary, 0, len(keys))
	for _, key := range keys {
		if !isGuildKey(key) {
			continue
		}
		data, err := r.objects.read(ctx, key)
		if err != nil {
			if errors.Is(err, errObjectNotFound) {
				continue
			}

			return nil, err
		}
		record, err := decodeGuild(data)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &entity.GuildSummary{
			ID:        record.ID,
			GuildName: record.GuildName,
			UpdatedAt: record.UpdatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}

func decodeGuild(data []byte) (*entity.GuildRecord, error) {
	var record entity.GuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode guild")
	}
	if record.State == nil {
		record.State = entity.NewGuildState(record.ID, record.GuildName)
	}
	entity.Normalize(record.State)

	return &record, nil
}

type adminRepository struct {
	objects objectStore
	now     func() time.Time
}

func (r *adminRepository) Get(ctx context.Context) (*entity.AdminCredential, error) {
	data, err := r.objects.read(ctx, adminKey)
	if err != nil {
		if errors.Is(err, errObjectNotFound) {
			return nil, errors.WithStack(repository.ErrAdminNotFound)
		}

		return nil, err
	}

	var cred entity.AdminCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin credential")
	}

	return &cred, nil
}

func (r *adminRepository) Save(ctx context.Context, cred *entity.AdminCredential) error {
	cred.UpdatedAt = r.now()
	data, err := json.Marshal(cred)
	if err != nil {
		return errors.Wrap(err, "failed to encode admin credential")
	}

	return r.objects.write(ctx, adminKey, data)
}
