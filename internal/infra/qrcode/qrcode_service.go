package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"guildbook/internal/domain/constants"
	"guildbook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	GuildID string `json:"guild_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. baseURL, when set,
// is embedded in the payload so phone cameras can open the guild directly.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateGuildQR generates a PNG QR code sharing a guild
func (s *qrcodeService) GenerateGuildQR(guildID string) ([]byte, error) {
	if guildID == "" {
		return nil, errors.New("guild id is required")
	}

	data := QRCodeData{
		GuildID: guildID,
		Type:    constants.GuildQRType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "?guild=" + url.QueryEscape(guildID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseGuildQR parses QR code data and returns the guild ID
func (s *qrcodeService) ParseGuildQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != constants.GuildQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.GuildID == "" {
		return "", errors.New("QR code carries no guild id")
	}

	return data.GuildID, nil
}
