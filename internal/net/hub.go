package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"PerfectCircle/internal/session"
)

// Hub is run by the HOST. It accepts websocket connections from players,
// merges every result it sees into the roster, and relays it to everyone
// else, so all players end up with the same board.
type Hub struct {
	roster   *Roster
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub creates a hub backed by the given roster.
func NewHub(roster *Roster) *Hub {
	return &Hub{
		roster: roster,
		conns:  make(map[*websocket.Conn]bool),
	}
}

// Listen serves the websocket endpoint on the given port. Blocks; run it in
// a goroutine.
func (h *Hub) Listen(port int) error {
	log.Printf("party host listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), h.Handler())
}

// Handler returns the hub's HTTP handler. Listen serves it; tests can mount
// it on their own server.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	return mux
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("player %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
		switch msg.Type {
		case TypeHello:
			log.Printf("player %q joined from %s", msg.Player, conn.RemoteAddr())
		case TypeResult:
			if msg.Result == nil {
				continue
			}
			// Relay only results the roster has not seen before.
			if h.roster.Add(msg.Player, *msg.Result) {
				h.broadcast(msg, conn)
			}
		}
	}
}

// Publish records a result from the host's own player and relays it to all
// connected players.
func (h *Hub) Publish(player string, res session.Result) {
	if h.roster.Add(player, res) {
		h.broadcast(Message{Type: TypeResult, Player: player, Result: &res}, nil)
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("connection added: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	log.Printf("connection removed: %s", conn.RemoteAddr())
}

// broadcast sends msg to every connection except the one it came from. The
// lock also serializes writes, which gorilla connections require.
func (h *Hub) broadcast(msg Message, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("error sending to %s: %v", conn.RemoteAddr(), err)
		}
	}
}
