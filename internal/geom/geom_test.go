package geom_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"PerfectCircle/internal/geom"
)

func TestCentroid(t *testing.T) {
	Convey("Given a set of points", t, func() {
		Convey("The centroid of a symmetric square is its center", func() {
			pts := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
			c := geom.Centroid(pts)
			So(c.X, ShouldAlmostEqual, 1)
			So(c.Y, ShouldAlmostEqual, 1)
		})

		Convey("The centroid of no points is the origin", func() {
			c := geom.Centroid(nil)
			So(c.X, ShouldEqual, 0)
			So(c.Y, ShouldEqual, 0)
		})

		Convey("Points evenly spaced on a circle average to its center", func() {
			pts := geom.OnCircle(400, 300, 150, 48)
			c := geom.Centroid(pts)
			So(c.X, ShouldAlmostEqual, 400, 1e-9)
			So(c.Y, ShouldAlmostEqual, 300, 1e-9)
		})
	})
}

func TestBoundingBox(t *testing.T) {
	Convey("Given points on a circle", t, func() {
		pts := geom.OnCircle(100, 100, 50, 360)
		box := geom.BoundingBox(pts)

		Convey("The box is square and spans the diameter", func() {
			So(box.Width, ShouldAlmostEqual, 100, 0.01)
			So(box.Height, ShouldAlmostEqual, 100, 0.01)
			So(box.AspectRatio(), ShouldAlmostEqual, 1, 0.001)
		})
	})

	Convey("Given collinear points", t, func() {
		pts := []geom.Point{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 20, Y: 5}}
		box := geom.BoundingBox(pts)

		Convey("The box is degenerate and the aspect ratio is zero", func() {
			So(box.Height, ShouldEqual, 0)
			So(box.AspectRatio(), ShouldEqual, 0)
		})
	})
}

func TestPathLength(t *testing.T) {
	Convey("Given a simple polyline", t, func() {
		pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}

		Convey("The length sums the segment distances", func() {
			So(geom.PathLength(pts), ShouldAlmostEqual, 11)
		})
	})

	Convey("A polyline needs two points to have length", t, func() {
		So(geom.PathLength(nil), ShouldEqual, 0)
		So(geom.PathLength([]geom.Point{{X: 1, Y: 1}}), ShouldEqual, 0)
	})

	Convey("Points on a circle approach the circumference", t, func() {
		pts := geom.OnCircle(0, 0, 100, 720)
		// Open polyline over 720 samples, missing only the closing segment.
		So(geom.PathLength(pts), ShouldAlmostEqual, 2*math.Pi*100, 1.0)
	})
}
