package model

import (
	"time"

	"guildbook/internal/domain/entity"

	"gorm.io/datatypes"
)

// GuildModel mirrors the 'guilds' table. The whole ledger state lives in a
// single JSONB column and is rewritten on every save.
type GuildModel struct {
	ID           string                                `gorm:"type:varchar(64);primaryKey"`
	GuildName    string                                `gorm:"type:varchar(200);not null"`
	PasswordHash string                                `gorm:"type:varchar(100);not null"`
	State        datatypes.JSONType[entity.GuildState] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GuildModel) TableName() string {
	return "guilds"
}

// GuildSummaryModel is the projection used by guild listings.
type GuildSummaryModel struct {
	ID        string
	GuildName string
	UpdatedAt time.Time
}
