package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vcard = "BEGIN:VCARD\r\nVERSION:3.0\r\nN:Pérez;Ana;;;\r\nFN:Ana Pérez\r\nTEL;TYPE=CELL:+56912345678\r\nNOTE:¡Encontré a esta mascota!\r\nEND:VCARD"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_Encode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.Encode(vcard)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_Encode_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Medium QR", 256, 256},
		{"Large QR", 512, 512},
		{"Unset size", -1, DefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.Encode(vcard)
			require.NoError(t, err)

			cfg, err := png.DecodeConfig(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Width)
		})
	}
}

func TestQRCodeService_Encode_Empty(t *testing.T) {
	_, err := NewQRCodeService(256, "M").Encode("")

	assert.Error(t, err)
}
