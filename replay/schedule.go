// Package replay computes stroke-by-stroke animation timing for doodles.
//
// A Schedule assigns each stroke a duration proportional to its path length,
// with a per-stroke floor and a hard ceiling on the whole animation. Given an
// elapsed time, Progress reports how far along each stroke is, letting any
// host (a UI frame callback, a game loop, a test harness) drive progressive
// rendering at arbitrary frame rates.
package replay

import (
	"math"

	"github.com/joodle/doodle"
)

// Default timing constants.
const (
	// DefaultUnitDuration is the time cost per unit of path length, in seconds.
	DefaultUnitDuration = 0.004

	// DefaultMinStrokeDuration is the floor applied to every stroke,
	// including dots, in seconds.
	DefaultMinStrokeDuration = 0.05

	// DefaultMaxTotalDuration is the ceiling on the whole replay, in seconds.
	DefaultMaxTotalDuration = 3.0
)

// Config holds the tunable timing constants.
// The zero value means "use defaults".
type Config struct {
	// UnitDuration is the time cost per unit of path length.
	UnitDuration float64

	// MinStrokeDuration is the floor applied to every stroke.
	MinStrokeDuration float64

	// MaxTotalDuration is the hard ceiling on the sum of all durations.
	MaxTotalDuration float64
}

// withDefaults fills in zero fields with the default constants.
func (c Config) withDefaults() Config {
	if c.UnitDuration == 0 {
		c.UnitDuration = DefaultUnitDuration
	}
	if c.MinStrokeDuration == 0 {
		c.MinStrokeDuration = DefaultMinStrokeDuration
	}
	if c.MaxTotalDuration == 0 {
		c.MaxTotalDuration = DefaultMaxTotalDuration
	}
	return c
}

// Schedule is the computed replay timing for one decoded stroke list.
// It is immutable after creation; all queries are pure functions, so a
// Schedule may be shared across goroutines.
type Schedule struct {
	durations []float64
	ends      []float64 // cumulative end time per stroke, non-decreasing
	dots      []bool
	total     float64
}

// New computes a schedule for the given decoded paths.
//
// Raw durations are MinStrokeDuration for dots, otherwise path length times
// UnitDuration floored at MinStrokeDuration. If the raw total exceeds
// MaxTotalDuration, every duration is compressed by the same factor so the
// total lands exactly on the ceiling.
func New(paths []doodle.DecodedPath, cfg Config) *Schedule {
	cfg = cfg.withDefaults()

	s := &Schedule{
		durations: make([]float64, len(paths)),
		ends:      make([]float64, len(paths)),
		dots:      make([]bool, len(paths)),
	}

	var rawTotal float64
	for i, dp := range paths {
		d := cfg.MinStrokeDuration
		if !dp.Dot {
			if byLength := dp.Path.Length() * cfg.UnitDuration; byLength > d {
				d = byLength
			}
		}
		s.durations[i] = d
		s.dots[i] = dp.Dot
		rawTotal += d
	}

	if rawTotal > cfg.MaxTotalDuration {
		scale := cfg.MaxTotalDuration / rawTotal
		for i := range s.durations {
			s.durations[i] *= scale
		}
		s.total = cfg.MaxTotalDuration
	} else {
		s.total = rawTotal
	}

	var sum float64
	for i, d := range s.durations {
		sum += d
		s.ends[i] = sum
	}
	return s
}

// Len returns the number of strokes in the schedule.
func (s *Schedule) Len() int {
	return len(s.durations)
}

// Total returns the total replay duration in seconds.
func (s *Schedule) Total() float64 {
	return s.total
}

// Duration returns the (possibly compressed) duration of stroke i.
func (s *Schedule) Duration(i int) float64 {
	return s.durations[i]
}

// End returns the cumulative end time of stroke i.
func (s *Schedule) End(i int) float64 {
	return s.ends[i]
}

// Dot reports whether stroke i is a dot.
func (s *Schedule) Dot(i int) bool {
	return s.dots[i]
}

// Progress returns the drawn fraction of every stroke at elapsed time t.
//
// The normalized elapsed time is run through an ease-out curve, 1-(1-x)^2,
// before the per-stroke lookup, so the replay starts fast and slows toward
// the end. Each fraction is in [0, 1]: 1 once the eased time passes the
// stroke's end, 0 before the previous stroke's end, a clamped partial
// fraction in between.
//
// A negative or NaN t is treated as 0; t at or beyond the total freezes
// every stroke at 1. Dots use their fraction only as a gate: see DotShown.
func (s *Schedule) Progress(t float64) []float64 {
	n := len(s.durations)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if s.total <= 0 {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t >= s.total {
		// Freeze at fully drawn; avoids float noise in the last
		// cumulative end ever reporting the final stroke as partial.
		for i := range out {
			out[i] = 1
		}
		return out
	}

	// Ease the normalized elapsed fraction, then convert back to a time.
	x := t / s.total
	eased := (1 - (1-x)*(1-x)) * s.total

	var prevEnd float64
	for i := 0; i < n; i++ {
		switch {
		case eased >= s.ends[i]:
			out[i] = 1
		case eased <= prevEnd:
			out[i] = 0
		default:
			if s.durations[i] <= 0 {
				out[i] = 1
			} else {
				out[i] = clamp01((eased - prevEnd) / s.durations[i])
			}
		}
		prevEnd = s.ends[i]
	}
	return out
}

// ProgressLoop is Progress with looping semantics: once t reaches the total
// duration the time origin resets, so progress at total+e equals progress
// at e from a fresh start.
func (s *Schedule) ProgressLoop(t float64) []float64 {
	if s.total <= 0 || math.IsNaN(t) || t < 0 {
		return s.Progress(t)
	}
	return s.Progress(math.Mod(t, s.total))
}

// DotShown reports whether a dot stroke should be rendered at the given
// progress fraction. Dots have no meaningful length to trim, so they pop in
// fully once their slot passes its temporal midpoint, and never partially.
func DotShown(frac float64) bool {
	return frac > 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
