package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/session"
)

// GameCanvas is the drawing surface for one round. Pointer-down starts a
// round, drag appends sampled positions and updates the live score,
// pointer-up (or the pointer leaving the canvas) finalizes it.
type GameCanvas struct {
	widget.BaseWidget
	round *session.Round
	ink   color.Color

	// OnLive receives the provisional score after every appended point.
	OnLive func(score int)
	// OnScored receives the final result at gesture end.
	OnScored func(res session.Result)
}

var _ fyne.Widget = (*GameCanvas)(nil)
var _ fyne.Draggable = (*GameCanvas)(nil)
var _ desktop.Mouseable = (*GameCanvas)(nil)

// NewGameCanvas creates the canvas for the given round.
func NewGameCanvas(round *session.Round) *GameCanvas {
	g := &GameCanvas{
		round: round,
		ink:   color.Black,
	}
	g.ExtendBaseWidget(g)
	return g
}

// SetInk sets the stroke color for subsequent drawing.
func (g *GameCanvas) SetInk(c color.Color) {
	g.ink = c
	g.Refresh()
}

// Round exposes the round for the toolbar and dialogs.
func (g *GameCanvas) Round() *session.Round {
	return g.round
}

func (g *GameCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	// Pointer-down on a scored round starts the next one.
	if g.round.State() == session.Scored {
		g.round.Reset()
	}
	g.round.Begin(geom.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)})
	g.Refresh()
}

func (g *GameCanvas) Dragged(e *fyne.DragEvent) {
	if g.round.State() != session.Drawing {
		return
	}
	live := g.round.Append(geom.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)})
	if g.OnLive != nil {
		g.OnLive(live)
	}
	g.Refresh()
}

func (g *GameCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		g.finish()
	}
}

// MouseOut acts as pointer-cancel, which ends the gesture exactly like
// pointer-up.
func (g *GameCanvas) MouseOut() {
	g.finish()
}

func (g *GameCanvas) finish() {
	if g.round.State() != session.Drawing {
		return
	}
	res, ok := g.round.Finish()
	if ok && g.OnScored != nil {
		g.OnScored(res)
	}
	g.Refresh()
}

func (g *GameCanvas) MouseIn(*desktop.MouseEvent)    {}
func (g *GameCanvas) MouseMoved(*desktop.MouseEvent) {}
func (g *GameCanvas) DragEnd()                       {}

func (g *GameCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &gameCanvasRenderer{game: g}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type gameCanvasRenderer struct {
	game       *GameCanvas
	background *canvas.Rectangle
}

func (r *gameCanvasRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}

	// The fitted circle overlay, under the stroke.
	if fitted, ok := r.game.round.Fitted(); ok && r.game.round.State() != session.Idle {
		objects = append(objects, fittedOverlay(fitted))
	}

	points := r.game.round.Stroke()
	for i := 1; i < len(points); i++ {
		segment := canvas.NewLine(r.game.ink)
		segment.StrokeWidth = 3
		segment.Position1 = fyne.NewPos(float32(points[i-1].X), float32(points[i-1].Y))
		segment.Position2 = fyne.NewPos(float32(points[i].X), float32(points[i].Y))
		objects = append(objects, segment)
	}
	return objects
}

func fittedOverlay(fitted circle.Circle) fyne.CanvasObject {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0x90}
	ring.StrokeWidth = 1.5
	ring.Position1 = fyne.NewPos(float32(fitted.X-fitted.Radius), float32(fitted.Y-fitted.Radius))
	ring.Position2 = fyne.NewPos(float32(fitted.X+fitted.Radius), float32(fitted.Y+fitted.Radius))
	return ring
}

func (r *gameCanvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	minDim := size.Width
	if size.Height < minDim {
		minDim = size.Height
	}
	r.game.round.SetViewport(float64(minDim))
}

func (r *gameCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *gameCanvasRenderer) Refresh() {
	canvas.Refresh(r.game)
}

func (r *gameCanvasRenderer) Destroy() {}
