package usecase

import (
	"context"

	"github.com/google/uuid"
)

// EtaResult is the outcome of one ETA computation. When the external
// routing service fails, Known is false and EtaText is "unknown"; no value
// is ever fabricated.
type EtaResult struct {
	Known        bool   `json:"known"`
	EtaMinutes   int    `json:"eta_minutes,omitempty"`
	EtaText      string `json:"eta_text"`
	DistanceText string `json:"distance_text,omitempty"`
}

// EtaUsecase defines the traffic-aware arrival estimates.
type EtaUsecase interface {
	// EstimateToStop estimates driving time from the vehicle's current
	// location to one of its route stops.
	EstimateToStop(ctx context.Context, vehicleID, stopID uuid.UUID) (*EtaResult, error)

	// EstimateToSchool estimates driving time from the vehicle's current
	// location to the school.
	EstimateToSchool(ctx context.Context, vehicleID uuid.UUID) (*EtaResult, error)
}
