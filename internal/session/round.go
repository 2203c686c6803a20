// Package session owns the state for one game round: the stroke being drawn,
// the fitted circle, and the live and final scores. The fitter and scorer
// stay pure; everything mutable lives here.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/geom"
)

// State is the round lifecycle: Idle until pointer-down, Drawing while the
// stroke grows, Scored after pointer-up. Scored goes back to Idle only via
// an explicit Reset.
type State int

const (
	Idle State = iota
	Drawing
	Scored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Scored:
		return "scored"
	}
	return "unknown"
}

// Result is the outcome of one finished round.
type Result struct {
	RoundID string        `json:"round_id"`
	Score   int           `json:"score"`
	Circle  circle.Circle `json:"circle"`
	Samples int           `json:"samples"`
	When    time.Time     `json:"when"`
}

// Accepted reports whether the stroke was graded rather than rejected.
func (r Result) Accepted() bool { return r.Score != circle.NotACircle }

// Round is the single mutable session object for the game. The stroke buffer
// has one writer (the input events) and is read by the scorer; a mutex keeps
// the UI renderer safe to read from.
type Round struct {
	mu          sync.RWMutex
	tuning      circle.Tuning
	viewportMin float64

	state  State
	id     string
	stroke []geom.Point
	fitted circle.Circle
	hasFit bool
	live   int
	final  Result
	best   int

	onScored func(Result)
}

// NewRound creates an idle round with the given tuning.
func NewRound(t circle.Tuning) *Round {
	return &Round{
		tuning:      t,
		viewportMin: 1, // replaced on the first layout
		live:        circle.NotACircle,
		best:        circle.NotACircle,
	}
}

// SetViewport records the smaller dimension of the drawing area, which the
// scorer uses for normalization.
func (r *Round) SetViewport(minDim float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if minDim > 0 {
		r.viewportMin = minDim
	}
}

// OnScored registers a hook called with the result of every finished round.
func (r *Round) OnScored(fn func(Result)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onScored = fn
}

// Begin starts a new gesture at p. It is a no-op unless the round is idle;
// a scored round must be reset first.
func (r *Round) Begin(p geom.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Idle {
		return false
	}
	r.state = Drawing
	r.id = uuid.NewString()
	r.stroke = []geom.Point{p}
	r.hasFit = false
	r.live = circle.NotACircle
	return true
}

// Append adds a sampled pointer position to the in-progress stroke and
// recomputes the provisional fit and score. Returns the current live score,
// NotACircle until enough points are buffered.
func (r *Round) Append(p geom.Point) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Drawing {
		return circle.NotACircle
	}
	r.stroke = append(r.stroke, p)
	r.fitted, r.hasFit = circle.Fit(r.stroke)
	if r.hasFit && len(r.stroke) >= r.tuning.LiveMinPoints {
		r.live = circle.Score(r.stroke, r.fitted, r.viewportMin, r.tuning)
	} else {
		r.live = circle.NotACircle
	}
	return r.live
}

// Finish ends the gesture and produces the final score. Pointer-cancel is
// handled identically to pointer-up. Returns false if no gesture is active.
func (r *Round) Finish() (Result, bool) {
	r.mu.Lock()
	if r.state != Drawing {
		r.mu.Unlock()
		return Result{}, false
	}
	r.state = Scored
	r.fitted, r.hasFit = circle.Fit(r.stroke)
	score := circle.NotACircle
	if r.hasFit {
		score = circle.Score(r.stroke, r.fitted, r.viewportMin, r.tuning)
	}
	res := Result{
		RoundID: r.id,
		Score:   score,
		Circle:  r.fitted,
		Samples: len(r.stroke),
		When:    time.Now(),
	}
	r.final = res
	if score > r.best {
		r.best = score
	}
	hook := r.onScored
	r.mu.Unlock()

	if hook != nil {
		hook(res)
	}
	return res, true
}

// Reset discards the stroke and returns the round to idle.
func (r *Round) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Idle
	r.id = ""
	r.stroke = nil
	r.hasFit = false
	r.live = circle.NotACircle
}

// State returns the current lifecycle state.
func (r *Round) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// ID returns the current round's identifier, empty while idle.
func (r *Round) ID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Stroke returns a copy of the points collected so far.
func (r *Round) Stroke() []geom.Point {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]geom.Point, len(r.stroke))
	copy(out, r.stroke)
	return out
}

// Fitted returns the latest fitted circle, if any.
func (r *Round) Fitted() (circle.Circle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fitted, r.hasFit
}

// LiveScore returns the provisional score of the in-progress stroke.
func (r *Round) LiveScore() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// Final returns the result of the last finished round.
func (r *Round) Final() Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.final
}

// Best returns the best accepted score this run, NotACircle if none yet.
func (r *Round) Best() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.best
}
