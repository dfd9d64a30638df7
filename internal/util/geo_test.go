package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCoordinate(t *testing.T) {
	assert.InDelta(t, 4.60971234, RoundCoordinate(4.609712344999), 1e-12)
	assert.InDelta(t, -74.08175, RoundCoordinate(-74.08175), 1e-12)
	assert.InDelta(t, 0.0, RoundCoordinate(0.000000001), 1e-12)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(4.6097, -74.0817))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.0001, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}

func TestSpeedToKmh(t *testing.T) {
	assert.InDelta(t, 36.0, SpeedToKmh(10), 1e-9)
	assert.Zero(t, SpeedToKmh(-1)) // no speed fix
}

func TestDistanceMeters(t *testing.T) {
	// Two points roughly 1.11km apart along the equator.
	d := DistanceMeters(0, 0, 0, 0.01)
	assert.InDelta(t, 1113, d, 5)
}
