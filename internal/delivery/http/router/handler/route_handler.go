package handler

import (
	"log/slog"
	"net/http"
	"time"

	"canino/internal/delivery/http/response"
	"canino/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for transport route handlers.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler.
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// PlanRoute generates a route for a vehicle, date and direction.
func (h *RouteHandler) PlanRoute(c echo.Context) error {
	input := new(usecase.PlanRouteInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	route, err := h.routeUC.PlanRoute(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, route, "Route planned")
}

// DriverRoutesToday returns the routes of the driver's vehicle for today.
func (h *RouteHandler) DriverRoutesToday(c echo.Context) error {
	driverID, err := callerID(c)
	if err != nil {
		return err
	}

	routes, err := h.routeUC.GetDriverRoutes(c.Request().Context(), driverID, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, routes, "Routes retrieved")
}

// StartRoute transitions the driver's planned route to active.
func (h *RouteHandler) StartRoute(c echo.Context) error {
	driverID, err := callerID(c)
	if err != nil {
		return err
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	route, err := h.routeUC.StartRoute(c.Request().Context(), driverID, routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route started")
}

// CompleteRoute closes the driver's route, pending stops included.
func (h *RouteHandler) CompleteRoute(c echo.Context) error {
	driverID, err := callerID(c)
	if err != nil {
		return err
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	route, err := h.routeUC.CompleteRoute(c.Request().Context(), driverID, routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route completed")
}

// CompleteStop marks one stop of the driver's active route as done.
func (h *RouteHandler) CompleteStop(c echo.Context) error {
	driverID, err := callerID(c)
	if err != nil {
		return err
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	stopID, err := pathUUID(c, "stopID")
	if err != nil {
		return err
	}

	result, err := h.routeUC.CompleteStop(c.Request().Context(), driverID, &usecase.CompleteStopInput{
		RouteID: routeID,
		StopID:  stopID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Stop completed"
	if result.AlreadyDone {
		message = "Stop already completed"
	}

	return response.Success(c, http.StatusOK, result, message)
}

// ParentRoutesToday returns today's routes restricted to the guardian's dogs.
func (h *RouteHandler) ParentRoutesToday(c echo.Context) error {
	guardianID, err := callerID(c)
	if err != nil {
		return err
	}

	routes, err := h.routeUC.GetDogStops(c.Request().Context(), guardianID, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, routes, "Routes retrieved")
}
