package entity

import "time"

// GuildRecord is the persisted envelope of a guild: its credentials and the
// full state snapshot.
type GuildRecord struct {
	ID           string      `json:"id"`
	GuildName    string      `json:"guildName"`
	PasswordHash string      `json:"passwordHash"`
	State        *GuildState `json:"state"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// GuildSummary is the lightweight listing view of a guild.
type GuildSummary struct {
	ID        string    `json:"id"`
	GuildName string    `json:"guildName"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminCredential is the single persistent admin password.
type AdminCredential struct {
	PasswordHash string    `json:"passwordHash"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
