package postgres

import (
	"context"
	"time"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/repository"
	"guildbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type guildRepository struct {
	db *gorm.DB
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *gorm.DB) repository.GuildRepository {
	return &guildRepository{db: db}
}

// FindByID loads the guild document with the given id
func (repo *guildRepository) FindByID(ctx context.Context, id string) (*entity.GuildRecord, error) {
	var guildModel model.GuildModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&guildModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrGuildNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find guild")
	}

	return toGuildRecord(&guildModel), nil
}

// Save upserts the guild document, replacing name, hash and state
func (repo *guildRepository) Save(ctx context.Context, record *entity.GuildRecord) error {
	guildModel := fromGuildRecord(record)
	guildModel.UpdatedAt = time.Now().UTC()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"guild_name", "password_hash", "state", "updated_at"}),
		}).
		Create(guildModel).Error
	if err != nil {
		return translateWriteError(err, "failed to save guild")
	}

	record.CreatedAt = guildModel.CreatedAt
	record.UpdatedAt = guildModel.UpdatedAt

	return nil
}

// SaveState updates name and state of an existing guild, keeping its password hash
func (repo *guildRepository) SaveState(ctx context.Context, id, guildName string, state *entity.GuildState) error {
	if state == nil {
		state = entity.NewGuildState(id, guildName)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GuildModel{}).
		Where("id = ?", id).
		Updates(stateColumns(guildName, state, time.Now().UTC()))
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to save guild state")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrGuildNotFound)
	}

	return nil
}

// Delete removes the guild document
func (repo *guildRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GuildModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guild")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrGuildNotFound)
	}

	return nil
}

// ListRecent returns guild summaries ordered by last update
func (repo *guildRepository) ListRecent(ctx context.Context, limit int) ([]*entity.GuildSummary, error) {
	var rows []model.GuildSummaryModel
	err := repo.db.WithContext(ctx).
		Model(&model.GuildModel{}).
		Select("id", "guild_name", "updated_at").
		Order("updated_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list guilds")
	}

	summaries := make([]*entity.GuildSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.GuildSummary{
			ID:        row.ID,
			GuildName: row.GuildName,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return summaries, nil
}

// Mapper functions

func fromGuildRecord(record *entity.GuildRecord) *model.GuildModel {
	state := entity.NewGuildState(record.ID, record.GuildName)
	if record.State != nil {
		state = record.State
	}

	return &model.GuildModel{
		ID:           record.ID,
		GuildName:    record.GuildName,
		PasswordHash: record.PasswordHash,
		State:        datatypes.NewJSONType(*state),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

// stateColumns lists the columns a session save may touch.
func stateColumns(guildName string, state *entity.GuildState, updatedAt time.Time) map[string]any {
	return map[string]any{
		"guild_name": guildName,
		"state":      datatypes.NewJSONType(*state),
		"updated_at": updatedAt,
	}
}

func toGuildRecord(guildModel *model.GuildModel) *entity.GuildRecord {
	state := guildModel.State.Data()
	entity.Normalize(&state)

	return &entity.GuildRecord{
		ID:           guildModel.ID,
		GuildName:    guildModel.GuildName,
		PasswordHash: guildModel.PasswordHash,
		State:        &state,
		CreatedAt:    guildModel.CreatedAt,
		UpdatedAt:    guildModel.UpdatedAt,
	}
}
