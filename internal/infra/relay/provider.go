// Package relay implements the realtime location fanout between the
// tracking write path and streaming clients.
package relay

import (
	"context"
	"log/slog"

	"canino/config"
	"canino/internal/domain/constants"
	"canino/internal/domain/entity"
	"canino/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopBroadcaster drops every sample when the relay is disabled. Subscribers
// get a channel that never delivers, so streaming endpoints degrade to
// polling the persisted current location.
type noopBroadcaster struct{}

func (b *noopBroadcaster) Broadcast(_ context.Context, _ *entity.VehicleLocation) error {
	return nil
}

func (b *noopBroadcaster) Subscribe(ctx context.Context, _ uuid.UUID) (<-chan *entity.VehicleLocation, func(), error) {
	ch := make(chan *entity.VehicleLocation)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		close(ch)
	}()

	var once func()
	closed := false
	once = func() {
		if !closed {
			closed = true
			close(done)
		}
	}

	return ch, once, nil
}

func (b *noopBroadcaster) Close() error {
	return nil
}

// BroadcasterParams holds dependencies for LocationBroadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocationBroadcaster creates a LocationBroadcaster based on configuration
func NewLocationBroadcaster(params BroadcasterParams) (service.LocationBroadcaster, error) {
	cfg := params.Config.Relay
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Relay not configured, realtime streaming disabled")

		return &noopBroadcaster{}, nil
	}

	var broadcaster service.LocationBroadcaster

	switch cfg.Provider {
	case constants.RelayProviderLocal:
		logger.Info("Using in-process location hub")

		broadcaster = NewLocalHub(cfg.SubscriberBuffer)

	case constants.RelayProviderRedis:
		if cfg.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis location relay", slog.String("addr", cfg.Addr))

		broadcaster = NewRedisBroadcaster(cfg, logger)

	default:
		return nil, errors.Errorf("unknown relay provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing LocationBroadcaster")

			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}
