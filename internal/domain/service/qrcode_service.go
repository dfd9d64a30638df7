package service

import "github.com/google/uuid"

// QRCodeService generates QR codes for vehicle tracking links.
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the public
	// live-tracking page for a vehicle.
	GenerateTrackingQR(vehicleID uuid.UUID) ([]byte, error)
}
