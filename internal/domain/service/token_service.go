package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	GuildID   string   `json:"gid"`
	SessionID string   `json:"sid"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates an access token for an opened guild session.
	GenerateToken(guildID, sessionID string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of access tokens.
	TokenTTL() time.Duration
}
