package relay

import (
	"context"
	"sync"

	"canino/internal/domain/entity"
	"canino/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultSubscriberBuffer = 16

// localHub is a single-process fanout keyed by vehicle ID. A slow subscriber
// never blocks the write path: when its buffer is full the sample is dropped,
// which is acceptable because every sample is also persisted and clients
// reconcile via RecordedAt.
type localHub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*hubSubscriber]struct{}
	buffer      int
	closed      bool
}

type hubSubscriber struct {
	ch chan *entity.VehicleLocation
}

// NewLocalHub is the constructor for localHub.
func NewLocalHub(buffer int) service.LocationBroadcaster {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	return &localHub{
		subscribers: make(map[uuid.UUID]map[*hubSubscriber]struct{}),
		buffer:      buffer,
	}
}

// Broadcast publishes one sample to every live subscriber of the vehicle.
func (h *localHub) Broadcast(_ context.Context, location *entity.VehicleLocation) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return errors.New("location hub is closed")
	}

	for sub := range h.subscribers[location.VehicleID] {
		select {
		case sub.ch <- location:
		default:
			// Subscriber buffer full, drop the sample.
		}
	}

	return nil
}

// Subscribe registers a channel for one vehicle's samples.
func (h *localHub) Subscribe(ctx context.Context, vehicleID uuid.UUID) (<-chan *entity.VehicleLocation, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, nil, errors.New("location hub is closed")
	}

	sub := &hubSubscriber{ch: make(chan *entity.VehicleLocation, h.buffer)}
	if h.subscribers[vehicleID] == nil {
		h.subscribers[vehicleID] = make(map[*hubSubscriber]struct{})
	}
	h.subscribers[vehicleID][sub] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if subs, ok := h.subscribers[vehicleID]; ok {
				if _, live := subs[sub]; live {
					delete(subs, sub)
					close(sub.ch)
				}
				if len(subs) == 0 {
					delete(h.subscribers, vehicleID)
				}
			}
		})
	}

	// Release the subscription when the caller's context ends.
	go func() {
		<-ctx.Done()
		cancel()
	}()

	return sub.ch, cancel, nil
}

// Close shuts the hub down and closes every subscriber channel.
func (h *localHub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	for vehicleID, subs := range h.subscribers {
		for sub := range subs {
			close(sub.ch)
		}
		delete(h.subscribers, vehicleID)
	}

	return nil
}
