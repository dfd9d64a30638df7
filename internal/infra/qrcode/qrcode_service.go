package qrcode

import (
	"fmt"
	"strings"

	"canino/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	trackingBaseURL      string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, trackingBaseURL string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		trackingBaseURL:      strings.TrimRight(trackingBaseURL, "/"),
	}
}

// GenerateTrackingQR renders a PNG QR code pointing at the public
// live-tracking page for a vehicle. The code carries a plain URL so any
// phone camera can open it without an app.
func (s *qrcodeService) GenerateTrackingQR(vehicleID uuid.UUID) ([]byte, error) {
	trackingURL := fmt.Sprintf("%s/%s", s.trackingBaseURL, vehicleID)

	qrCode, err := qrcode.New(trackingURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
