package ws

import (
	"sync"

	"go.uber.org/zap"
)

// RoomMessage is a payload addressed to every client of one room. An empty
// Room reaches all clients.
type RoomMessage struct {
	Room    string
	Payload []byte
}

// Hub maintains the set of active Clients and broadcasts messages to the
// Clients of a room.
type Hub struct {
	// Registered Clients.
	Clients        map[*Client]bool
	ClientsRWMutex sync.RWMutex

	// Outbound messages for a room.
	Broadcast chan RoomMessage

	// Register requests from the Clients.
	Register chan *Client

	// Unregister requests from Clients.
	Unregister chan *Client

	quit   chan struct{}
	once   sync.Once
	logger *zap.SugaredLogger
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Hub{
		Broadcast:  make(chan RoomMessage),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
		quit:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.ClientsRWMutex.Lock()
			for client := range h.Clients {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.ClientsRWMutex.Unlock()
			return
		case client := <-h.Register:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			h.Clients[client] = true
			h.ClientsRWMutex.Unlock()
		case client := <-h.Unregister:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.ClientsRWMutex.Unlock()
		case message := <-h.Broadcast:
			h.ClientsRWMutex.Lock()
			for client := range h.Clients {
				if message.Room != "" && client.Room != message.Room {
					continue
				}
				select {
				case client.Send <- message.Payload:
				default:
					h.logger.Warnf("Removing client %s of room %s due to full channel", client.SessionId, client.Room)
					delete(h.Clients, client)
					close(client.Send)
				}
			}
			h.ClientsRWMutex.Unlock()
		}
	}
}

// Stop ends Run and closes the Send channel of every remaining client.
func (h *Hub) Stop() {
	h.once.Do(func() {
		close(h.quit)
	})
}

func (h *Hub) BroadcastToRoom(room string, payload []byte) {
	select {
	case h.Broadcast <- RoomMessage{Room: room, Payload: payload}:
	case <-h.quit:
	}
}

func (h *Hub) HasClient(client *Client) bool {
	h.ClientsRWMutex.RLock()
	defer h.ClientsRWMutex.RUnlock()
	return h.Clients[client]
}

// RoomSize counts the clients watching room.
func (h *Hub) RoomSize(room string) int {
	h.ClientsRWMutex.RLock()
	defer h.ClientsRWMutex.RUnlock()
	count := 0
	for client := range h.Clients {
		if client.Room == room {
			count++
		}
	}
	return count
}

func (h *Hub) register(client *Client) {
	select {
	case h.Register <- client:
	case <-h.quit:
	}
}

func (h *Hub) unregister(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.quit:
	}
}
