package relay

import (
	"context"
	"testing"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(vehicleID uuid.UUID, recordedAt time.Time) *entity.VehicleLocation {
	return &entity.VehicleLocation{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		Latitude:   4.60971,
		Longitude:  -74.08175,
		SpeedKmh:   18,
		IsMoving:   true,
		Source:     entity.LocationSourceWatch,
		RecordedAt: recordedAt,
	}
}

func TestLocalHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewLocalHub(4)
	defer hub.Close()

	vehicleID := uuid.New()
	ch, cancel, err := hub.Subscribe(context.Background(), vehicleID)
	require.NoError(t, err)
	defer cancel()

	loc := testLocation(vehicleID, time.Now())
	require.NoError(t, hub.Broadcast(context.Background(), loc))

	select {
	case got := <-ch:
		assert.Equal(t, loc.ID, got.ID)
		assert.Equal(t, vehicleID, got.VehicleID)
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast sample")
	}
}

func TestLocalHub_SubscribersAreIsolatedByVehicle(t *testing.T) {
	hub := NewLocalHub(4)
	defer hub.Close()

	vehicleA := uuid.New()
	vehicleB := uuid.New()

	chA, cancelA, err := hub.Subscribe(context.Background(), vehicleA)
	require.NoError(t, err)
	defer cancelA()

	require.NoError(t, hub.Broadcast(context.Background(), testLocation(vehicleB, time.Now())))

	select {
	case got := <-chA:
		t.Fatalf("subscriber for vehicle A received sample for vehicle %s", got.VehicleID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLocalHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewLocalHub(1)
	defer hub.Close()

	vehicleID := uuid.New()
	ch, cancel, err := hub.Subscribe(context.Background(), vehicleID)
	require.NoError(t, err)
	defer cancel()

	// Fill the buffer, then publish more; Broadcast must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			_ = hub.Broadcast(context.Background(), testLocation(vehicleID, time.Now()))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}

	// The buffered sample is still deliverable.
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected at least one buffered sample")
	}
}

func TestLocalHub_CancelClosesChannel(t *testing.T) {
	hub := NewLocalHub(4)
	defer hub.Close()

	ch, cancel, err := hub.Subscribe(context.Background(), uuid.New())
	require.NoError(t, err)

	cancel()
	// Calling cancel twice must be safe.
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("expected the channel to close")
	}
}

func TestLocalHub_CloseClosesAllSubscribers(t *testing.T) {
	hub := NewLocalHub(4)

	ch, cancel, err := hub.Subscribe(context.Background(), uuid.New())
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, hub.Close())

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("expected the channel to close on hub shutdown")
	}

	err = hub.Broadcast(context.Background(), testLocation(uuid.New(), time.Now()))
	assert.Error(t, err)
}
