// Package export renders finished rounds to PDF, one round per page.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/geom"
)

// A4 content box, in millimeters.
const (
	pageMarginMM  = 20.0
	contentSizeMM = 170.0
	captionYMM    = 275.0
)

// PDF writes the stroke, its fitted circle and the score to w.
func PDF(w io.Writer, points []geom.Point, fitted circle.Circle, score int) error {
	if len(points) < 2 {
		return fmt.Errorf("nothing to export: %d points", len(points))
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	// Fit the drawing and the circle overlay into the content box,
	// preserving aspect.
	box := geom.BoundingBox(points)
	minX := math.Min(box.X, fitted.X-fitted.Radius)
	minY := math.Min(box.Y, fitted.Y-fitted.Radius)
	maxX := math.Max(box.X+box.Width, fitted.X+fitted.Radius)
	maxY := math.Max(box.Y+box.Height, fitted.Y+fitted.Radius)
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		return fmt.Errorf("degenerate drawing")
	}
	scale := contentSizeMM / span
	tx := func(x float64) float64 { return pageMarginMM + (x-minX)*scale }
	ty := func(y float64) float64 { return pageMarginMM + (y-minY)*scale }

	// Fitted circle underneath, dashed.
	p.SetDrawColor(120, 120, 120)
	p.SetLineWidth(0.3)
	p.SetDashPattern([]float64{2, 1.5}, 0)
	p.Circle(tx(fitted.X), ty(fitted.Y), fitted.Radius*scale, "D")
	p.SetDashPattern([]float64{}, 0)

	// The stroke itself.
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.6)
	for i := 1; i < len(points); i++ {
		p.Line(tx(points[i-1].X), ty(points[i-1].Y), tx(points[i].X), ty(points[i].Y))
	}

	caption := "Not a circle"
	if score != circle.NotACircle {
		caption = fmt.Sprintf("Score: %d / 100", score)
	}
	p.SetFont("Helvetica", "B", 18)
	p.Text(pageMarginMM, captionYMM, caption)

	return p.Output(w)
}
