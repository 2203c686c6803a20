package net

import (
	"log"
	"sort"
	"sync"

	"PerfectCircle/internal/session"
)

// Entry is one round result attributed to a player.
type Entry struct {
	Player string
	Result session.Result
}

// Standing is a player's aggregate position on the roster.
type Standing struct {
	Player string
	Best   int
	Rounds int
}

// Roster collects round results from every player on the network. Results
// are merged idempotently by round ID, so a result relayed twice (host echo,
// reconnect replay) is counted once regardless of arrival order.
type Roster struct {
	mu       sync.RWMutex
	results  map[string]Entry // round ID -> entry
	onChange func()
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{results: make(map[string]Entry)}
}

// OnChange registers a hook fired whenever a new result lands. The hook may
// be called from a network goroutine.
func (r *Roster) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Add merges a result into the roster. Returns false for duplicates and for
// rejected strokes, which never make the board.
func (r *Roster) Add(player string, res session.Result) bool {
	if !res.Accepted() || res.RoundID == "" {
		return false
	}
	r.mu.Lock()
	if _, exists := r.results[res.RoundID]; exists {
		r.mu.Unlock()
		return false
	}
	r.results[res.RoundID] = Entry{Player: player, Result: res}
	hook := r.onChange
	r.mu.Unlock()

	log.Printf("[roster] %s scored %d (round %s)", player, res.Score, res.RoundID)
	if hook != nil {
		hook()
	}
	return true
}

// Standings returns every player's best score, highest first.
func (r *Roster) Standings() []Standing {
	r.mu.RLock()
	best := make(map[string]*Standing)
	for _, e := range r.results {
		s, ok := best[e.Player]
		if !ok {
			s = &Standing{Player: e.Player}
			best[e.Player] = s
		}
		s.Rounds++
		if e.Result.Score > s.Best {
			s.Best = e.Result.Score
		}
	}
	r.mu.RUnlock()

	out := make([]Standing, 0, len(best))
	for _, s := range best {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Best != out[j].Best {
			return out[i].Best > out[j].Best
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// Len returns the number of distinct results collected.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}
