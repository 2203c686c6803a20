// Package circle fits a circle to a freehand stroke and scores how close the
// stroke is to a perfect circle.
package circle

import (
	"PerfectCircle/internal/geom"
)

// NotACircle is the sentinel score for strokes that fail the minimum shape
// criteria. It is distinct from a numeric low score: a degenerate stroke is
// rejected, not graded.
const NotACircle = -1

// Circle is a fitted circle, derived from a stroke.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Center returns the circle's center as a point.
func (c Circle) Center() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// Fit computes the centroid-based circle approximation of a stroke: the
// center is the mean of the point coordinates and the radius the mean
// distance from the points to that center. This is intentionally not a
// least-squares fit; the scoring thresholds are calibrated against it, so
// the two must change together. Returns false for fewer than 3 points.
func Fit(points []geom.Point) (Circle, bool) {
	if len(points) < 3 {
		return Circle{}, false
	}
	center := geom.Centroid(points)
	var sum float64
	for _, p := range points {
		sum += p.Distance(center)
	}
	return Circle{
		X:      center.X,
		Y:      center.Y,
		Radius: sum / float64(len(points)),
	}, true
}
