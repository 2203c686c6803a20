package circle_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/geom"
)

const viewportMin = 800.0

// starPoints alternates between two radii on evenly-spaced angles, producing
// a square bounding box with wildly varying point-to-center distances.
func starPoints(cx, cy, outer, inner float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = geom.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

func mustFit(pts []geom.Point) circle.Circle {
	fitted, ok := circle.Fit(pts)
	So(ok, ShouldBeTrue)
	return fitted
}

func TestScore(t *testing.T) {
	tuning := circle.DefaultTuning()

	Convey("Given a stroke sampled exactly on a circle", t, func() {
		pts := geom.OnCircle(400, 400, 200, 60)
		fitted := mustFit(pts)
		score := circle.Score(pts, fitted, viewportMin, tuning)

		Convey("The score is near perfect", func() {
			So(score, ShouldBeGreaterThanOrEqualTo, 95)
			So(score, ShouldBeLessThanOrEqualTo, 100)
		})

		Convey("Scoring is idempotent over the same stroke and circle", func() {
			So(circle.Score(pts, fitted, viewportMin, tuning), ShouldEqual, score)
		})
	})

	Convey("Given a stroke with too few samples", t, func() {
		pts := geom.OnCircle(400, 400, 200, 10)
		fitted := mustFit(pts)

		Convey("The stroke is rejected regardless of its shape", func() {
			So(circle.Score(pts, fitted, viewportMin, tuning), ShouldEqual, circle.NotACircle)
		})
	})

	Convey("Given a tiny circle", t, func() {
		pts := geom.OnCircle(400, 400, 5, 40)
		fitted := mustFit(pts)

		Convey("The stroke is rejected for being below the minimum radius", func() {
			So(circle.Score(pts, fitted, viewportMin, tuning), ShouldEqual, circle.NotACircle)
		})
	})

	Convey("Given a flat stroke with a degenerate bounding box", t, func() {
		pts := make([]geom.Point, 40)
		for i := range pts {
			pts[i] = geom.Point{X: float64(i) * 10, Y: 100}
		}
		fitted := mustFit(pts)

		Convey("The stroke is rejected", func() {
			So(circle.Score(pts, fitted, viewportMin, tuning), ShouldEqual, circle.NotACircle)
		})
	})

	Convey("Given strokes with varying radii inside a square bounding box", t, func() {
		Convey("Mild variation is graded but markedly reduced", func() {
			pts := starPoints(400, 400, 200, 150, 32)
			fitted := mustFit(pts)
			score := circle.Score(pts, fitted, viewportMin, tuning)
			So(score, ShouldNotEqual, circle.NotACircle)
			So(score, ShouldBeLessThan, 80)
		})

		Convey("Wild variation is rejected outright", func() {
			pts := starPoints(400, 400, 200, 60, 32)
			fitted := mustFit(pts)
			So(circle.Score(pts, fitted, viewportMin, tuning), ShouldEqual, circle.NotACircle)
		})
	})

	Convey("Given an otherwise identical open and closed loop", t, func() {
		closed := geom.OnCircle(400, 400, 200, 60)
		open := closed[:55] // leaves a 36 degree gap between first and last

		closedScore := circle.Score(closed, mustFit(closed), viewportMin, tuning)
		openScore := circle.Score(open, mustFit(open), viewportMin, tuning)

		Convey("The open loop scores lower", func() {
			So(openScore, ShouldNotEqual, circle.NotACircle)
			So(openScore, ShouldBeLessThan, closedScore)
		})
	})

	Convey("Given a stroke that traces the loop three times over", t, func() {
		once := geom.OnCircle(400, 400, 200, 60)
		thrice := append(append(append([]geom.Point{}, once...), once...), once...)
		fitted := mustFit(thrice)
		score := circle.Score(thrice, fitted, viewportMin, tuning)

		Convey("The path-length penalty brings the score down", func() {
			single := circle.Score(once, mustFit(once), viewportMin, tuning)
			So(score, ShouldNotEqual, circle.NotACircle)
			So(score, ShouldBeLessThan, single)
		})
	})
}
