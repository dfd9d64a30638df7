package maps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canino/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"
)

func createTestEstimator(t *testing.T, payload string) service.RouteEstimator {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, payload)
	}))
	t.Cleanup(server.Close)

	client, err := gmaps.NewClient(gmaps.WithAPIKey("test-key"), gmaps.WithBaseURL(server.URL))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &distanceMatrixEstimator{client: client, timeout: time.Second, logger: logger}
}

func matrixPayload(element string) string {
	return fmt.Sprintf(`{
		"destination_addresses": ["Calle 100 # 10-20"],
		"origin_addresses": ["Carrera 7 # 45-10"],
		"rows": [{"elements": [%s]}],
		"status": "OK"
	}`, element)
}

func TestDistanceMatrixEstimator_Estimate_RoundsMinutesUp(t *testing.T) {
	cases := []struct {
		name           string
		trafficSeconds int
		wantMinutes    int
	}{
		{"61 seconds reads as 2 minutes", 61, 2},
		{"whole minutes stay whole", 300, 5},
		{"sub-minute legs never read as zero", 30, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			element := fmt.Sprintf(`{
				"status": "OK",
				"duration": {"value": 900, "text": "15 mins"},
				"duration_in_traffic": {"value": %d, "text": "stub"},
				"distance": {"value": 1800, "text": "1.8 km"}
			}`, tc.trafficSeconds)
			estimator := createTestEstimator(t, matrixPayload(element))

			estimate, err := estimator.Estimate(context.Background(),
				service.Coordinate{Lat: 4.71, Lng: -74.07},
				service.Coordinate{Lat: 4.65, Lng: -74.06},
			)

			require.NoError(t, err)
			assert.Equal(t, tc.wantMinutes, estimate.EtaMinutes)
			assert.Equal(t, "1.8 km", estimate.DistanceText)
		})
	}
}

func TestDistanceMatrixEstimator_Estimate_FallsBackToStaticDuration(t *testing.T) {
	element := `{
		"status": "OK",
		"duration": {"value": 240, "text": "4 mins"},
		"distance": {"value": 1200, "text": "1.2 km"}
	}`
	estimator := createTestEstimator(t, matrixPayload(element))

	estimate, err := estimator.Estimate(context.Background(),
		service.Coordinate{Lat: 4.71, Lng: -74.07},
		service.Coordinate{Lat: 4.65, Lng: -74.06},
	)

	require.NoError(t, err)
	assert.Equal(t, 4, estimate.EtaMinutes)
}

func TestDistanceMatrixEstimator_Estimate_ElementNotOKIsUnavailable(t *testing.T) {
	estimator := createTestEstimator(t, matrixPayload(`{"status": "ZERO_RESULTS"}`))

	estimate, err := estimator.Estimate(context.Background(),
		service.Coordinate{Lat: 4.71, Lng: -74.07},
		service.Coordinate{Lat: 4.65, Lng: -74.06},
	)

	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, service.ErrRouteUnavailable)
}
