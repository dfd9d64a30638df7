package handler

import (
	"log/slog"
	"net/http"

	"canino/config"
	"canino/internal/delivery/http/response"
	"canino/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler,
// injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for push subscription handlers.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	cfg            *config.Config
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// SubscribeRequest mirrors the PushSubscription JSON that
// PushManager.subscribe produces in the browser, plus a free-form device label.
type SubscribeRequest struct {
	Subscription struct {
		Endpoint string `json:"endpoint" validate:"required,url"`
		Keys     struct {
			P256dh string `json:"p256dh" validate:"required"`
			Auth   string `json:"auth" validate:"required"`
		} `json:"keys" validate:"required"`
	} `json:"subscription" validate:"required"`
	DeviceInfo string `json:"device_info"`
}

// UnsubscribeRequest identifies the subscription to drop by its endpoint.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// Subscribe registers the caller's browser push subscription.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	role, err := callerRole(c)
	if err != nil {
		return err
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, role, &usecase.SubscribeInput{
		Endpoint:   req.Subscription.Endpoint,
		P256dh:     req.Subscription.Keys.P256dh,
		Auth:       req.Subscription.Keys.Auth,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription registered")
}

// Unsubscribe deactivates the caller's subscription with the given endpoint.
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription removed")
}

// GetVAPIDPublicKey returns the key the client passes to PushManager.subscribe.
func (h *SubscriptionHandler) GetVAPIDPublicKey(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"public_key": h.subscriptionUC.GetVAPIDPublicKey(),
	}, "VAPID public key retrieved")
}

// SendTestNotification pushes a canned payload to the caller's devices. The
// route only exists when test routes are enabled in config.
func (h *SubscriptionHandler) SendTestNotification(c echo.Context) error {
	if h.cfg.TestRoutes == nil || !h.cfg.TestRoutes.Enabled {
		return response.NotFound(c, "NOT_FOUND", "Not found")
	}

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.subscriptionUC.SendTestNotification(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Test notification sent")
}
