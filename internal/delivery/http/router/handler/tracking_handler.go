package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"canino/internal/delivery/http/response"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const streamWriteTimeout = 10 * time.Second

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for vehicle tracking handlers.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// NewTrackingHandler is the constructor for TrackingHandler.
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
		upgrader: websocket.Upgrader{
			// The tracking page is served from a different origin than the API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ReportLocationRequest is one GPS sample from the driver device.
// Latitude and longitude are pointers so the equator and the prime meridian
// survive the required check, which treats a zero float as absent.
type ReportLocationRequest struct {
	Latitude   *float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	HeadingDeg float64   `json:"heading_deg" validate:"gte=0,lt=360"`
	SpeedMs    float64   `json:"speed_ms"`
	AccuracyM  float64   `json:"accuracy_m" validate:"gte=0"`
	Source     string    `json:"source" validate:"omitempty,oneof=manual timer watch"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ReportLocation handles a driver posting a GPS sample for their vehicle.
func (h *TrackingHandler) ReportLocation(c echo.Context) error {
	driverID, err := callerID(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.trackingUC.ReportLocation(c.Request().Context(), driverID, &usecase.ReportLocationInput{
		VehicleID:  vehicleID,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		HeadingDeg: req.HeadingDeg,
		SpeedMs:    req.SpeedMs,
		AccuracyM:  req.AccuracyM,
		Source:     req.Source,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location recorded")
}

// GetCurrentLocation returns the vehicle's most recent sample.
func (h *TrackingHandler) GetCurrentLocation(c echo.Context) error {
	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	location, err := h.trackingUC.GetCurrentLocation(c.Request().Context(), vehicleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Current location retrieved")
}

// GetRecentLocations returns the newest samples for the vehicle trail view.
func (h *TrackingHandler) GetRecentLocations(c echo.Context) error {
	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
	}

	locations, err := h.trackingUC.GetRecentLocations(c.Request().Context(), vehicleID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Recent locations retrieved")
}

// ListVehicles returns the vehicles currently in service.
func (h *TrackingHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.trackingUC.ListActiveVehicles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vehicles, "Vehicles retrieved")
}

// StreamLocations upgrades to a WebSocket and relays the vehicle's live
// samples until the client disconnects.
func (h *TrackingHandler) StreamLocations(c echo.Context) error {
	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	samples, cancel, err := h.trackingUC.StreamLocations(ctx, vehicleID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade websocket")
	}
	defer conn.Close()

	// Drain reads so close frames and pings are processed; the read error
	// tells us the client went away.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Send the latest known position first so a parent connecting while the
	// vehicle is idle sees it without waiting for the next live sample.
	if current, err := h.trackingUC.GetCurrentLocation(ctx, vehicleID); err == nil {
		if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
			return nil
		}
		if err := conn.WriteJSON(current); err != nil {
			return nil
		}
	} else if !errors.Is(err, domainerrors.ErrNoCurrentLocation) {
		h.logger.Warn("Failed to load current location for stream",
			slog.String("vehicle_id", vehicleID.String()),
			slog.String("error", err.Error()),
		)
	}

	for {
		select {
		case location, ok := <-samples:
			if !ok {
				return nil
			}

			if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
				return nil
			}
			if err := conn.WriteJSON(location); err != nil {
				h.logger.Debug("Stream client write failed",
					slog.String("vehicle_id", vehicleID.String()),
					slog.String("error", err.Error()),
				)

				return nil
			}
		case <-clientGone:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// GetTrackingQR returns the QR code PNG for a vehicle's public tracking
// page, base64-encoded for direct embedding in an <img> tag.
func (h *TrackingHandler) GetTrackingQR(c echo.Context) error {
	vehicleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.trackingUC.GenerateTrackingQR(c.Request().Context(), vehicleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"vehicle_id":    vehicleID.String(),
		"qr_png_base64": base64.StdEncoding.EncodeToString(png),
	}, "Tracking QR generated")
}
