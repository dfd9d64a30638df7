package handler

import (
	"log/slog"
	"net/http"
	"time"

	"canino/internal/delivery/http/response"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EtaHandlerParams holds dependencies for EtaHandler, injected by Fx.
type EtaHandlerParams struct {
	fx.In

	EtaUC   usecase.EtaUsecase
	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// EtaHandler holds dependencies for arrival estimate handlers.
type EtaHandler struct {
	etaUC   usecase.EtaUsecase
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewEtaHandler is the constructor for EtaHandler.
func NewEtaHandler(params EtaHandlerParams) *EtaHandler {
	return &EtaHandler{
		etaUC:   params.EtaUC,
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// GetDogEta estimates when the vehicle reaches the dog's stop on today's
// routes. With ?to=school the estimate targets the school instead, which is
// what the morning pickup view shows after the dog is on board.
func (h *EtaHandler) GetDogEta(c echo.Context) error {
	guardianID, err := callerID(c)
	if err != nil {
		return err
	}

	dogID, err := pathUUID(c, "dogID")
	if err != nil {
		return err
	}

	routes, err := h.routeUC.GetDogStops(c.Request().Context(), guardianID, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	vehicleID, stopID, found := findDogStop(routes, dogID)
	if !found {
		return errors.WithStack(domainerrors.ErrStopNotFound)
	}

	var eta *usecase.EtaResult
	if c.QueryParam("to") == "school" {
		eta, err = h.etaUC.EstimateToSchool(c.Request().Context(), vehicleID)
	} else {
		eta, err = h.etaUC.EstimateToStop(c.Request().Context(), vehicleID, stopID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, eta, "ETA estimated")
}

// findDogStop locates the dog's pending stop on today's runs, preferring an
// active route over a planned one so the estimate tracks the run in progress.
func findDogStop(routes []*entity.TransportRoute, dogID uuid.UUID) (vehicleID, stopID uuid.UUID, found bool) {
	for _, route := range routes {
		if route.Status == entity.RouteStatusCompleted {
			continue
		}

		for i := range route.Stops {
			stop := &route.Stops[i]
			if stop.DogID != dogID || stop.Completed() {
				continue
			}

			if route.Status == entity.RouteStatusActive {
				return route.VehicleID, stop.ID, true
			}
			if !found {
				vehicleID, stopID, found = route.VehicleID, stop.ID, true
			}
		}
	}

	return vehicleID, stopID, found
}
