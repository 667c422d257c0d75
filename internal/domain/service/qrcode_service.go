package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// Encode renders content as a PNG QR code
	Encode(content string) ([]byte, error)
}
