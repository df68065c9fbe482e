package service

// ShareQRService defines the interface for share QR code generation.
type ShareQRService interface {
	// GenerateShareQR renders a PNG QR code pointing at the public URL of the
	// content identified by slug.
	GenerateShareQR(slug string) ([]byte, error)
}
