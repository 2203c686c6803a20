package circle

// Tuning holds every threshold and weight the scorer uses. The zero value is
// not usable; start from DefaultTuning and override through configuration.
type Tuning struct {
	// MinPoints rejects strokes with too few samples to judge.
	MinPoints int `koanf:"min_points"`

	// LiveMinPoints is how many samples must be buffered before the
	// in-progress stroke gets a provisional score.
	LiveMinPoints int `koanf:"live_min_points"`

	// MinRadius rejects fitted circles below this many pixels.
	MinRadius float64 `koanf:"min_radius"`

	// MinRadiusFrac rejects fitted circles smaller than this fraction of
	// the viewport's smaller dimension.
	MinRadiusFrac float64 `koanf:"min_radius_frac"`

	// DeviationDivisor sets the normalization scale for radial deviation:
	// deviations are measured against viewportMin / DeviationDivisor.
	DeviationDivisor float64 `koanf:"deviation_divisor"`

	// Radial variance penalty.
	StdDevWeight     float64 `koanf:"std_dev_weight"`
	MaxStdDevPenalty float64 `koanf:"max_std_dev_penalty"`

	// Bounding-box aspect ratio penalty.
	AspectWeight     float64 `koanf:"aspect_weight"`
	MaxAspectPenalty float64 `koanf:"max_aspect_penalty"`

	// Min/max observed radius ratio penalty.
	RangeWeight     float64 `koanf:"range_weight"`
	MaxRangePenalty float64 `koanf:"max_range_penalty"`

	// ClosureThreshold is the allowed start-to-end gap as a fraction of the
	// fitted radius before the closure penalty kicks in.
	ClosureThreshold  float64 `koanf:"closure_threshold"`
	MaxClosurePenalty float64 `koanf:"max_closure_penalty"`

	// Stroke length relative to the fitted circumference must fall inside
	// [MinLengthRatio, MaxLengthRatio].
	MinLengthRatio   float64 `koanf:"min_length_ratio"`
	MaxLengthRatio   float64 `koanf:"max_length_ratio"`
	MaxLengthPenalty float64 `koanf:"max_length_penalty"`

	// Hard rejection floors applied after the numeric score is known.
	MinAcceptScore int     `koanf:"min_accept_score"`
	MinAspectRatio float64 `koanf:"min_aspect_ratio"`
	MaxNormStdDev  float64 `koanf:"max_norm_std_dev"`
}

// DefaultTuning returns the reference parameter set.
func DefaultTuning() Tuning {
	return Tuning{
		MinPoints:         30,
		LiveMinPoints:     20,
		MinRadius:         10,
		MinRadiusFrac:     0.04,
		DeviationDivisor:  4,
		StdDevWeight:      0.5,
		MaxStdDevPenalty:  40,
		AspectWeight:      0.4,
		MaxAspectPenalty:  30,
		RangeWeight:       0.4,
		MaxRangePenalty:   30,
		ClosureThreshold:  0.35,
		MaxClosurePenalty: 40,
		MinLengthRatio:    0.6,
		MaxLengthRatio:    2.2,
		MaxLengthPenalty:  50,
		MinAcceptScore:    40,
		MinAspectRatio:    0.3,
		MaxNormStdDev:     0.5,
	}
}

// Validate reports whether the tuning is internally consistent.
func (t Tuning) Validate() error {
	switch {
	case t.MinPoints < 3:
		return errTuning("min_points must be at least 3")
	case t.LiveMinPoints < 3:
		return errTuning("live_min_points must be at least 3")
	case t.MinRadius <= 0:
		return errTuning("min_radius must be positive")
	case t.DeviationDivisor <= 0:
		return errTuning("deviation_divisor must be positive")
	case t.MinLengthRatio <= 0 || t.MaxLengthRatio <= t.MinLengthRatio:
		return errTuning("length ratio band must satisfy 0 < min < max")
	case t.ClosureThreshold <= 0:
		return errTuning("closure_threshold must be positive")
	}
	return nil
}

type errTuning string

func (e errTuning) Error() string { return "tuning: " + string(e) }
