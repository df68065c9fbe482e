package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareQRService(t *testing.T) {
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareQRService(tt.size, tt.errorCorrectionLevel, "https://example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestShareQRService_GenerateShareQR(t *testing.T) {
	service := NewShareQRService(256, "M", "https://example.com")

	qrBytes, err := service.GenerateShareQR("hello-world")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestShareQRService_GenerateShareQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareQRService(tt.size, "M", "https://example.com")

			qrBytes, err := service.GenerateShareQR("hello-world")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestShareQRService_TrimsTrailingSlash(t *testing.T) {
	withSlash := NewShareQRService(256, "M", "https://example.com/")
	withoutSlash := NewShareQRService(256, "M", "https://example.com")

	a, err := withSlash.GenerateShareQR("hello-world")
	require.NoError(t, err)
	b, err := withoutSlash.GenerateShareQR("hello-world")
	require.NoError(t, err)

	// Same URL encoded either way, so the PNG output matches.
	assert.Equal(t, a, b)
}
