package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canino/internal/delivery/http/middleware"
	"canino/internal/delivery/http/validator"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	mockUsecase "canino/internal/mocks/usecase"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTrackingHandler(t *testing.T) (*TrackingHandler, *mockUsecase.MockTrackingUsecase) {
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewTrackingHandler(TrackingHandlerParams{
		TrackingUC: trackingUC,
		Logger:     logger,
	})

	return handler, trackingUC
}

func dialStream(t *testing.T, handler *TrackingHandler, vehicleID uuid.UUID) *websocket.Conn {
	t.Helper()

	e := echo.New()
	e.GET("/vehicles/:id/stream", handler.StreamLocations)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/vehicles/" + vehicleID.String() + "/stream"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func newReportContext(t *testing.T, body string, driverID, vehicleID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(vehicleID.String())
	c.Set(middleware.ContextKeyUserID, driverID)

	return c, rec
}

func TestTrackingHandler_ReportLocation_AcceptsZeroCoordinates(t *testing.T) {
	handler, trackingUC := createTestTrackingHandler(t)

	driverID := uuid.New()
	vehicleID := uuid.New()

	trackingUC.EXPECT().ReportLocation(mock.Anything, driverID, mock.MatchedBy(func(input *usecase.ReportLocationInput) bool {
		return input.VehicleID == vehicleID && input.Latitude == 0 && input.Longitude == 0
	})).Return(&entity.VehicleLocation{VehicleID: vehicleID}, nil)

	// Null Island is a legal fix; a zero float must not read as a missing field.
	body := `{"latitude":0,"longitude":0,"speed_ms":3.2}`
	c, rec := newReportContext(t, body, driverID, vehicleID)

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestTrackingHandler_ReportLocation_MissingLatitudeRejected(t *testing.T) {
	handler, _ := createTestTrackingHandler(t)

	c, _ := newReportContext(t, `{"longitude":-74.08}`, uuid.New(), uuid.New())

	err := handler.ReportLocation(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTrackingHandler_StreamLocations_SendsCurrentLocationFirst(t *testing.T) {
	handler, trackingUC := createTestTrackingHandler(t)

	vehicleID := uuid.New()
	current := &entity.VehicleLocation{
		ID:        uuid.New(),
		VehicleID: vehicleID,
		Latitude:  4.60971,
		Longitude: -74.08175,
	}
	samples := make(chan *entity.VehicleLocation)

	trackingUC.EXPECT().StreamLocations(mock.Anything, vehicleID).
		Return(samples, func() {}, nil)
	trackingUC.EXPECT().GetCurrentLocation(mock.Anything, vehicleID).
		Return(current, nil)

	conn := dialStream(t, handler, vehicleID)

	// The snapshot arrives before any live sample is published.
	var first entity.VehicleLocation
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, current.ID, first.ID)
	assert.Equal(t, current.Latitude, first.Latitude)
	assert.Equal(t, current.Longitude, first.Longitude)

	live := &entity.VehicleLocation{ID: uuid.New(), VehicleID: vehicleID, Latitude: 4.61000}
	samples <- live

	var second entity.VehicleLocation
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, live.ID, second.ID)
}

func TestTrackingHandler_StreamLocations_NoCurrentLocationStreamsLiveSamples(t *testing.T) {
	handler, trackingUC := createTestTrackingHandler(t)

	vehicleID := uuid.New()
	samples := make(chan *entity.VehicleLocation)

	trackingUC.EXPECT().StreamLocations(mock.Anything, vehicleID).
		Return(samples, func() {}, nil)
	trackingUC.EXPECT().GetCurrentLocation(mock.Anything, vehicleID).
		Return(nil, domainerrors.ErrNoCurrentLocation)

	conn := dialStream(t, handler, vehicleID)

	live := &entity.VehicleLocation{ID: uuid.New(), VehicleID: vehicleID, Latitude: 4.61000}
	samples <- live

	var got entity.VehicleLocation
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, live.ID, got.ID)
}
