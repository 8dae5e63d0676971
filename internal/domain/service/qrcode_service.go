package service

// QRCodeService defines the interface for guild share code generation and parsing
type QRCodeService interface {
	// GenerateGuildQR renders a PNG QR code pointing at the guild
	GenerateGuildQR(guildID string) ([]byte, error)

	// ParseGuildQR parses QR code data and returns the guild ID
	ParseGuildQR(qrData string) (string, error)
}
