// Package qr provides QR code generation for shareable article links.
package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"atelier/internal/domain/service"
)

type shareQRService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewShareQRService creates a new share QR service instance
func NewShareQRService(size int, errorCorrectionLevel string, baseURL string) service.ShareQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

	return &shareQRService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShareQR renders a PNG QR code that points at the public article page.
func (s *shareQRService) GenerateShareQR(slug string) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/articles/%s", s.baseURL, slug)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
