package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom widget for ink swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the top bar: round actions plus the ink palette.
// onNewRound and onExport are supplied by the app shell.
func NewToolbar(game *GameCanvas, onNewRound, onExport func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), onNewRound), // New round
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onExport),  // Export PDF
	)

	colorBox := container.NewHBox(
		newColorSwatch(color.Black, game.SetInk),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, game.SetInk),         // Red
		newColorSwatch(color.NRGBA{G: 170, A: 255}, game.SetInk),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, game.SetInk),         // Blue
		newColorSwatch(color.NRGBA{R: 230, G: 150, A: 255}, game.SetInk), // Orange
	)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Ink:"),
		colorBox,
		layout.NewSpacer(),
	)
}
