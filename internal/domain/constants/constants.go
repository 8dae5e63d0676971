// Package constants holds provider names and other fixed identifiers shared
// by configuration and wiring code.
package constants

const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	StorageProviderPostgres = "postgres"
	StorageProviderBlob     = "blob"
)

// GuildQRType tags QR payloads that point at a guild.
const GuildQRType = "guild"

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
