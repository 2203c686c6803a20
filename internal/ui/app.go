package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/config"
	"PerfectCircle/internal/export"
	"PerfectCircle/internal/net"
	"PerfectCircle/internal/session"
)

// RunApp builds the window and runs the Fyne main loop. roster and publish
// are nil outside party mode; publish is called with every finished round.
func RunApp(cfg *config.Config, round *session.Round, roster *net.Roster, publish func(session.Result)) {
	a := app.New()
	w := a.NewWindow("Perfect Circle")
	w.Resize(fyne.NewSize(1024, 768))

	scoreText := canvas.NewText("Draw a circle", theme.Color(theme.ColorNameForeground))
	scoreText.TextSize = 32
	scoreText.TextStyle = fyne.TextStyle{Bold: true}

	bestLabel := widget.NewLabel("")

	game := NewGameCanvas(round)

	game.OnLive = func(score int) {
		if score == circle.NotACircle {
			scoreText.Text = "..."
		} else {
			scoreText.Text = fmt.Sprintf("%d", score)
		}
		scoreText.Refresh()
	}

	game.OnScored = func(res session.Result) {
		if res.Accepted() {
			scoreText.Text = fmt.Sprintf("%d / 100", res.Score)
		} else {
			scoreText.Text = "Not a circle - try again"
		}
		scoreText.Refresh()
		if best := round.Best(); best != circle.NotACircle {
			bestLabel.SetText(fmt.Sprintf("Best this run: %d", best))
		}
		if publish != nil && res.Accepted() {
			publish(res)
		}
	}

	onNewRound := func() {
		round.Reset()
		scoreText.Text = "Draw a circle"
		scoreText.Refresh()
		game.Refresh()
	}

	onExport := func() {
		final := round.Final()
		points := round.Stroke()
		if len(points) < 2 {
			dialog.ShowInformation("Export", "Finish a round first.", w)
			return
		}
		saver := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if writer == nil {
				return
			}
			defer writer.Close()
			if err := export.PDF(writer, points, final.Circle, final.Score); err != nil {
				log.Printf("PDF export failed: %v", err)
				dialog.ShowError(err, w)
			}
		}, w)
		saver.SetFileName("perfect-circle.pdf")
		saver.Show()
	}

	toolbar := NewToolbar(game, onNewRound, onExport)
	status := container.NewHBox(widget.NewLabel(cfg.PlayerName), widget.NewSeparator(), bestLabel)

	var side fyne.CanvasObject
	if roster != nil {
		standings := widget.NewLabel("Waiting for scores...")
		standings.Wrapping = fyne.TextWrapOff
		roster.OnChange(func() {
			text := standingsText(roster)
			fyne.Do(func() {
				standings.SetText(text)
			})
		})
		side = container.NewVBox(
			widget.NewLabelWithStyle("Party", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			standings,
		)
	}

	header := container.NewVBox(toolbar, container.NewCenter(scoreText))
	content := container.NewBorder(header, status, nil, side, game)
	w.SetContent(content)
	w.ShowAndRun()
}

func standingsText(roster *net.Roster) string {
	text := ""
	for i, s := range roster.Standings() {
		text += fmt.Sprintf("%d. %s: %d (%d rounds)\n", i+1, s.Player, s.Best, s.Rounds)
	}
	if text == "" {
		text = "Waiting for scores..."
	}
	return text
}
