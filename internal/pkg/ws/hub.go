package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Hub tracks connected clients per chat and fans new messages out to them.
// Delivery is best-effort: the persisted chat log is the source of truth, the
// socket only saves clients from polling.
type Hub struct {
	clients    map[string]map[*Client]bool
	broadcast  chan *envelope
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	logger zerolog.Logger
}

type envelope struct {
	chatID string
	data   []byte
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *envelope),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub loop. It should run in its own goroutine for the life of
// the server.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

// Broadcast pushes a payload to every client subscribed to the chat
func (h *Hub) Broadcast(chatID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().Err(err).Str("chatID", chatID).Msg("Failed to marshal broadcast payload")
		return
	}
	h.logger.Debug().Str("chatID", chatID).Int("clients", h.ClientCount(chatID)).Msg("Broadcasting chat message")
	h.broadcast <- &envelope{chatID: chatID, data: data}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.chatID]; !ok {
		h.clients[client.chatID] = make(map[*Client]bool)
	}
	h.clients[client.chatID][client] = true

	h.logger.Debug().Str("chatID", client.chatID).Msg("Websocket client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.chatID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.clients, client.chatID)
			}
			h.logger.Debug().Str("chatID", client.chatID).Msg("Websocket client unregistered")
		}
	}
}

func (h *Hub) deliver(env *envelope) {
	h.mu.RLock()
	clients := h.clients[env.chatID]
	// Copy so a slow client can be dropped without holding the read lock
	targets := make([]*Client, 0, len(clients))
	for client := range clients {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.send <- env.data:
		default:
			// Send buffer full, drop the client
			h.unregisterClient(client)
			client.conn.Close()
		}
	}
}

// ClientCount returns the number of clients subscribed to a chat
func (h *Hub) ClientCount(chatID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[chatID])
}
