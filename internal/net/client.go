package net

import (
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"PerfectCircle/internal/session"
)

// Client is run by a PLAYER joining a host. It publishes the local player's
// results and merges everything the host relays into the shared roster.
type Client struct {
	player string
	roster *Roster

	mu   sync.Mutex
	conn *websocket.Conn
}

// Join dials the host at addr (host:port), announces the player, and starts
// listening for relayed results.
func Join(addr, player string, roster *Roster) (*Client, error) {
	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to host %s: %w", addr, err)
	}
	c := &Client{player: player, roster: roster, conn: conn}
	if err := c.send(Message{Type: TypeHello, Player: player}); err != nil {
		conn.Close()
		return nil, err
	}
	log.Printf("joined host at %s as %q", addr, player)
	go c.readLoop()
	return c, nil
}

// Publish records the local player's result and sends it to the host.
func (c *Client) Publish(res session.Result) {
	if !c.roster.Add(c.player, res) {
		return
	}
	if err := c.send(Message{Type: TypeResult, Player: c.player, Result: &res}); err != nil {
		log.Printf("failed to send result: %v", err)
	}
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

func (c *Client) readLoop() {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			log.Printf("disconnected from host: %v", err)
			return
		}
		if msg.Type == TypeResult && msg.Result != nil {
			c.roster.Add(msg.Player, *msg.Result)
		}
	}
}
