package websocket

import (
	"sync"

	"StarGame/internal/utils"
)

// Publisher is what the game side needs from the hub.
type Publisher interface {
	Publish(tournamentID string, msg OutgoingMessage)
}

type HubInterface interface {
	Publisher
	SpectatorCount(tournamentID string) int
	Close()
}

// Hub fans tournament events out to the spectators subscribed to them.
type Hub struct {
	clients    map[string]*Client // client id -> client
	register   chan *Client
	unregister chan *Client
	subscribe  chan subscription
	broadcast  chan broadcastReq
	quit       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
}

type broadcastReq struct {
	Tournament string
	Message    OutgoingMessage
}

type subscription struct {
	Client     *Client
	Tournament string
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan subscription),
		broadcast:  make(chan broadcastReq),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			n := len(h.clients)
			h.mu.Unlock()
			utils.Log.Debug("spectator registered", "client", c.ID, "tournament", c.Tournament, "connected", n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				close(c.Send)
				utils.Log.Debug("spectator left", "client", c.ID, "connected", len(h.clients))
			}
			h.mu.Unlock()

		case s := <-h.subscribe:
			h.mu.Lock()
			if c, ok := h.clients[s.Client.ID]; ok {
				c.Tournament = s.Tournament
			}
			h.mu.Unlock()

		case req := <-h.broadcast:
			h.mu.RLock()
			for _, c := range h.clients {
				if c.Tournament != req.Tournament {
					continue
				}
				select {
				case c.Send <- req.Message:
				default:
					// slow spectator, drop the event
				}
			}
			h.mu.RUnlock()

		case <-h.quit:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish sends msg to every spectator of the tournament. It returns
// immediately once the hub is closed.
func (h *Hub) Publish(tournamentID string, msg OutgoingMessage) {
	select {
	case h.broadcast <- broadcastReq{Tournament: tournamentID, Message: msg}:
	case <-h.quit:
	}
}

func (h *Hub) SpectatorCount(tournamentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.clients {
		if c.Tournament == tournamentID {
			n++
		}
	}
	return n
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}
