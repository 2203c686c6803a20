// Package net implements LAN party mode: the host advertises itself over
// mDNS and relays finished-round results between players over websockets.
package net

import "PerfectCircle/internal/session"

// Message types on the wire.
const (
	TypeResult = "result"
	TypeHello  = "hello"
)

// Message is the JSON envelope exchanged between host and players.
type Message struct {
	Type   string          `json:"type"`
	Player string          `json:"player,omitempty"`
	Result *session.Result `json:"result,omitempty"`
}
