package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	cache "MediFlow360/config/cache"
)

// Event is one realtime message routed to a room. Rooms are keyed
// "user:<code>" or "tenant:<id>".
type Event struct {
	Room    string      `json:"room"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// Hub fans events out to connected SSE clients grouped by room.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[chan Event]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[chan Event]bool)}
}

var DefaultHub = NewHub()

// Join registers a client channel in every given room.
func (h *Hub) Join(client chan Event, rooms ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range rooms {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[chan Event]bool)
		}
		h.rooms[room][client] = true
	}
}

// removeLocked unregisters the client from every room it joined.
// Returns whether the client was still registered; callers hold mu and
// close the channel on true, so it closes exactly once.
func (h *Hub) removeLocked(client chan Event) bool {
	registered := false
	for room, clients := range h.rooms {
		if clients[client] {
			delete(clients, client)
			registered = true
		}
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	return registered
}

// Leave removes the client from every room and closes its channel.
func (h *Hub) Leave(client chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.removeLocked(client) {
		close(client)
	}
}

// Dispatch delivers an event to every client in its room. Clients that
// do not drain within a second are dropped from every room they
// joined, not just the event's room, so no later dispatch can send on
// their closed channel.
func (h *Hub) Dispatch(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.rooms[event.Room] {
		select {
		case client <- event:
		case <-time.After(1 * time.Second):
			if h.removeLocked(client) {
				close(client)
			}
		}
	}
	if len(h.rooms[event.Room]) == 0 {
		delete(h.rooms, event.Room)
	}
}

// ClientCount reports connected clients in a room.
func (h *Hub) ClientCount(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

/*
* Run bridges the redis pub/sub channel into the hub so that events
* published by any process reach clients connected to this one.
 */
func (h *Hub) Run(ctx context.Context) {
	sub := cache.Subscribe(ctx)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Println("Error decoding realtime event:", err)
				continue
			}
			h.Dispatch(event)
		}
	}
}

/*
* Emit publishes an event through redis; the hub bridge delivers it to
* connected clients. Failures only log, writes never fail on fan-out.
 */
func Emit(ctx context.Context, room, kind string, payload interface{}) {
	event := Event{
		Room:    room,
		Kind:    kind,
		Payload: payload,
		At:      time.Now(),
	}
	if err := cache.Publish(ctx, event); err != nil {
		log.Println("Error publishing realtime event:", err)
	}
}

func UserRoom(code string) string { return "user:" + code }

func TenantRoom(id string) string { return "tenant:" + id }
