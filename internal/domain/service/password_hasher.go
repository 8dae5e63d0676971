// Package service declares the infrastructure the use cases depend on:
// hashing, tokens, QR codes and ledger event delivery.
package service

// PasswordHasher hashes guild and admin passwords. Plaintext passwords are never stored.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
