package circle

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"PerfectCircle/internal/geom"
)

// Score grades a stroke against its fitted circle and returns an integer in
// [0,100], or NotACircle when the stroke fails the minimum shape criteria.
// viewportMin is the smaller dimension of the drawing area, used to keep the
// deviation term resolution independent. Pure: the same inputs always
// produce the same score.
func Score(points []geom.Point, c Circle, viewportMin float64, t Tuning) int {
	if len(points) < t.MinPoints || c.Radius < t.MinRadius {
		return NotACircle
	}
	box := geom.BoundingBox(points)
	if box.Width == 0 || box.Height == 0 {
		return NotACircle
	}

	center := c.Center()
	radii := make([]float64, len(points))
	devs := make([]float64, len(points))
	for i, p := range points {
		radii[i] = p.Distance(center)
		devs[i] = math.Abs(radii[i] - c.Radius)
	}

	// Base score from the average radial deviation, normalized to a
	// fraction of the viewport so small and large screens grade alike.
	normDev := stat.Mean(devs, nil) / (viewportMin / t.DeviationDivisor)
	base := clamp(100-100*normDev, 0, 100)

	var penalty float64

	// Wobbly radii: spread of the per-point radii around the mean.
	normStd := stat.StdDev(radii, nil) / c.Radius
	penalty += math.Min(normStd*100*t.StdDevWeight, t.MaxStdDevPenalty)

	// Squashed shapes: a circle's bounding box is square.
	aspect := box.AspectRatio()
	penalty += math.Min((1-aspect)*100*t.AspectWeight, t.MaxAspectPenalty)

	// Extremes of the observed radii.
	rangeRatio := floats.Min(radii) / floats.Max(radii)
	penalty += math.Min((1-rangeRatio)*100*t.RangeWeight, t.MaxRangePenalty)

	// Open loops: gap between first and last point, relative to the radius.
	closure := points[0].Distance(points[len(points)-1]) / c.Radius
	if closure > t.ClosureThreshold {
		penalty += math.Min((closure-t.ClosureThreshold)*100, t.MaxClosurePenalty)
	}

	// Stroke length against the circumference: too short means the loop was
	// never completed, too long means doodling back and forth.
	lengthRatio := geom.PathLength(points) / (2 * math.Pi * c.Radius)
	if lengthRatio < t.MinLengthRatio {
		penalty += math.Min((t.MinLengthRatio-lengthRatio)*100, t.MaxLengthPenalty)
	} else if lengthRatio > t.MaxLengthRatio {
		penalty += math.Min((lengthRatio-t.MaxLengthRatio)*100, t.MaxLengthPenalty)
	}

	final := int(math.Round(clamp(base-penalty, 0, 100)))

	// A degenerate shape is reported as "not a circle", not as a low score.
	if final < t.MinAcceptScore ||
		aspect < t.MinAspectRatio ||
		normStd > t.MaxNormStdDev ||
		c.Radius < viewportMin*t.MinRadiusFrac {
		return NotACircle
	}
	return final
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
