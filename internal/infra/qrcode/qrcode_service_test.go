package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateGuildQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://guildbook.example/join/")

	qrBytes, err := service.GenerateGuildQR("guild-1")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GenerateGuildQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseGuildQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	payload, err := json.Marshal(QRCodeData{GuildID: "guild-1", Type: "guild"})
	require.NoError(t, err)

	guildID, err := service.ParseGuildQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "guild-1", guildID)
}

func TestQRCodeService_ParseGuildQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "guild-1"},
		{"wrong type", `{"guild_id":"guild-1","type":"subscription"}`},
		{"missing id", `{"type":"guild"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseGuildQR(tt.data)
			assert.Error(t, err)
		})
	}
}
