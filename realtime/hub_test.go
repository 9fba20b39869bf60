package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubJoinDispatchLeave(t *testing.T) {
	hub := NewHub()
	client := make(chan Event, 1)
	hub.Join(client, UserRoom("U-1a2b3c4d"), TenantRoom("T-1a2b3c4d"))

	assert.Equal(t, 1, hub.ClientCount(UserRoom("U-1a2b3c4d")))
	assert.Equal(t, 1, hub.ClientCount(TenantRoom("T-1a2b3c4d")))

	hub.Dispatch(Event{Room: UserRoom("U-1a2b3c4d"), Kind: "notification"})
	select {
	case event := <-client:
		assert.Equal(t, "notification", event.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected event on client channel")
	}

	hub.Leave(client)
	assert.Equal(t, 0, hub.ClientCount(UserRoom("U-1a2b3c4d")))
	assert.Equal(t, 0, hub.ClientCount(TenantRoom("T-1a2b3c4d")))

	_, open := <-client
	assert.False(t, open)
}

func TestHubDispatchOnlyTargetRoom(t *testing.T) {
	hub := NewHub()
	a := make(chan Event, 1)
	b := make(chan Event, 1)
	hub.Join(a, UserRoom("U-a"))
	hub.Join(b, UserRoom("U-b"))

	hub.Dispatch(Event{Room: UserRoom("U-a"), Kind: "order"})

	require.Len(t, a, 1)
	assert.Len(t, b, 0)
}

func TestHubDropsSlowClientFromEveryRoom(t *testing.T) {
	hub := NewHub()
	slow := make(chan Event) // unbuffered and never drained
	hub.Join(slow, UserRoom("U-a"), TenantRoom("T-a"))

	hub.Dispatch(Event{Room: UserRoom("U-a"), Kind: "notification"})

	assert.Equal(t, 0, hub.ClientCount(UserRoom("U-a")))
	assert.Equal(t, 0, hub.ClientCount(TenantRoom("T-a")))

	// the tenant room no longer holds the closed channel
	hub.Dispatch(Event{Room: TenantRoom("T-a"), Kind: "low_stock"})

	// disconnect path after the drop must not close twice
	hub.Leave(slow)

	_, open := <-slow
	assert.False(t, open)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := make(chan Event) // unbuffered and never drained
	hub.Join(slow, TenantRoom("T-a"))

	hub.Dispatch(Event{Room: TenantRoom("T-a"), Kind: "low_stock"})

	assert.Equal(t, 0, hub.ClientCount(TenantRoom("T-a")))
	_, open := <-slow
	assert.False(t, open)
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "user:U-1a2b3c4d", UserRoom("U-1a2b3c4d"))
	assert.Equal(t, "tenant:T-1a2b3c4d", TenantRoom("T-1a2b3c4d"))
}
