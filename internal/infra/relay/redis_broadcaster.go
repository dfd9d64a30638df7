package relay

import (
	"context"
	"encoding/json"
	"log/slog"

	"canino/config"
	"canino/internal/domain/entity"
	"canino/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const locationChannelPrefix = "vehicle_locations:"

// redisBroadcaster implements LocationBroadcaster on Redis Pub/Sub so fanout
// works across multiple API instances. One Redis channel per vehicle.
type redisBroadcaster struct {
	client *redis.Client
	buffer int
	logger *slog.Logger
}

// NewRedisBroadcaster is the constructor for redisBroadcaster.
func NewRedisBroadcaster(cfg *config.RelayConfig, logger *slog.Logger) service.LocationBroadcaster {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	buffer := cfg.SubscriberBuffer
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	return &redisBroadcaster{
		client: client,
		buffer: buffer,
		logger: logger,
	}
}

// Broadcast publishes one sample to the vehicle's Redis channel.
func (b *redisBroadcaster) Broadcast(ctx context.Context, location *entity.VehicleLocation) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return errors.Wrap(err, "failed to encode location")
	}

	if err := b.client.Publish(ctx, locationChannelPrefix+location.VehicleID.String(), payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish location")
	}

	return nil
}

// Subscribe opens a Redis subscription for one vehicle's channel and pumps
// decoded samples into a buffered channel until the caller cancels.
func (b *redisBroadcaster) Subscribe(ctx context.Context, vehicleID uuid.UUID) (<-chan *entity.VehicleLocation, func(), error) {
	pubsub := b.client.Subscribe(ctx, locationChannelPrefix+vehicleID.String())

	// Force the subscription to be established before handing it out.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()

		return nil, nil, errors.Wrap(err, "failed to subscribe to location channel")
	}

	out := make(chan *entity.VehicleLocation, b.buffer)
	subCtx, cancelCtx := context.WithCancel(ctx)

	go func() {
		defer close(out)

		msgs := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var location entity.VehicleLocation
				if err := json.Unmarshal([]byte(msg.Payload), &location); err != nil {
					b.logger.Warn("Dropping malformed location message",
						slog.String("channel", msg.Channel),
						slog.String("error", err.Error()),
					)

					continue
				}

				select {
				case out <- &location:
				default:
					// Subscriber buffer full, drop the sample.
				}
			}
		}
	}()

	cancel := func() {
		cancelCtx()
		pubsub.Close()
	}

	return out, cancel, nil
}

// Close releases the Redis client.
func (b *redisBroadcaster) Close() error {
	return b.client.Close()
}
