package replay

import (
	"math"
	"testing"

	"github.com/joodle/doodle"
)

func line(length float64) doodle.Stroke {
	return doodle.Stroke{Points: []doodle.Point{doodle.Pt(0, 0), doodle.Pt(length, 0)}}
}

func dot() doodle.Stroke {
	return doodle.Stroke{Points: []doodle.Point{doodle.Pt(1, 1)}, Dot: true}
}

func decode(strokes ...doodle.Stroke) []doodle.DecodedPath {
	return doodle.Drawing(strokes).Decode()
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScheduleProportionality(t *testing.T) {
	s := New(decode(line(10), line(100)), Config{
		UnitDuration:      0.004,
		MinStrokeDuration: 0.05,
		MaxTotalDuration:  3.0,
	})

	// 10 units floors at the minimum; 100 units runs proportionally.
	if got := s.Duration(0); !almostEqual(got, 0.05) {
		t.Errorf("Duration(0) = %v, want 0.05 (floored)", got)
	}
	if got := s.Duration(1); !almostEqual(got, 0.4) {
		t.Errorf("Duration(1) = %v, want 0.4", got)
	}
	if s.Duration(1) < s.Duration(0) {
		t.Error("longer stroke got a shorter duration")
	}
	if s.Total() > 3.0 {
		t.Errorf("Total() = %v exceeds ceiling", s.Total())
	}
}

func TestScheduleCapEnforcement(t *testing.T) {
	strokes := make([]doodle.Stroke, 50)
	for i := range strokes {
		strokes[i] = line(1000)
	}
	s := New(decode(strokes...), Config{})

	// Raw total is 50 * 4.0s = 200s; compression lands exactly on the cap.
	if s.Total() != DefaultMaxTotalDuration {
		t.Errorf("Total() = %v, want exactly %v", s.Total(), DefaultMaxTotalDuration)
	}

	// Uniform compression: every stroke scaled by the same factor.
	want := DefaultMaxTotalDuration / 50
	for i := 0; i < s.Len(); i++ {
		if !almostEqual(s.Duration(i), want) {
			t.Fatalf("Duration(%d) = %v, want %v", i, s.Duration(i), want)
		}
	}
	if !almostEqual(s.End(s.Len()-1), DefaultMaxTotalDuration) {
		t.Errorf("final End = %v, want %v", s.End(s.Len()-1), DefaultMaxTotalDuration)
	}
}

func TestScheduleSingleStrokeClampedToCeiling(t *testing.T) {
	s := New(decode(line(1e6)), Config{})
	if s.Total() != DefaultMaxTotalDuration {
		t.Errorf("Total() = %v, want %v", s.Total(), DefaultMaxTotalDuration)
	}
	if s.Duration(0) != DefaultMaxTotalDuration {
		t.Errorf("Duration(0) = %v, want %v", s.Duration(0), DefaultMaxTotalDuration)
	}
}

func TestScheduleDotUsesMinimum(t *testing.T) {
	s := New(decode(dot(), line(500)), Config{})

	if got := s.Duration(0); !almostEqual(got, DefaultMinStrokeDuration) {
		t.Errorf("dot duration = %v, want %v", got, DefaultMinStrokeDuration)
	}
	if !s.Dot(0) || s.Dot(1) {
		t.Errorf("dot flags = %t,%t, want true,false", s.Dot(0), s.Dot(1))
	}
}

func TestScheduleEndsMonotonic(t *testing.T) {
	s := New(decode(line(5), dot(), line(300), line(50), dot()), Config{})

	prev := 0.0
	for i := 0; i < s.Len(); i++ {
		if s.End(i) < prev {
			t.Fatalf("End(%d) = %v < previous %v", i, s.End(i), prev)
		}
		prev = s.End(i)
	}
	if s.Total() > DefaultMaxTotalDuration {
		t.Errorf("Total() = %v exceeds ceiling", s.Total())
	}
}

func TestScheduleEmpty(t *testing.T) {
	s := New(nil, Config{})
	if s.Total() != 0 {
		t.Errorf("Total() = %v, want 0", s.Total())
	}
	if got := s.Progress(1.0); len(got) != 0 {
		t.Errorf("Progress returned %d fractions, want 0", len(got))
	}
}

func TestProgressMonotonic(t *testing.T) {
	s := New(decode(line(10), dot(), line(200), line(40)), Config{})

	prev := make([]float64, s.Len())
	for step := 0; step <= 100; step++ {
		t1 := s.Total() * float64(step) / 100
		fracs := s.Progress(t1)
		for i, f := range fracs {
			if f < prev[i]-1e-9 {
				t.Fatalf("stroke %d progress decreased at t=%v: %v -> %v", i, t1, prev[i], f)
			}
			if f < 0 || f > 1 {
				t.Fatalf("stroke %d progress out of range at t=%v: %v", i, t1, f)
			}
			prev[i] = f
		}
	}
}

func TestProgressClamping(t *testing.T) {
	s := New(decode(line(100), line(100)), Config{})

	for _, tc := range []float64{-1, math.NaN()} {
		for i, f := range s.Progress(tc) {
			if f != 0 {
				t.Errorf("Progress(%v)[%d] = %v, want 0", tc, i, f)
			}
		}
	}

	for i, f := range s.Progress(s.Total() + 10) {
		if f != 1 {
			t.Errorf("Progress(beyond)[%d] = %v, want 1", i, f)
		}
	}
	for i, f := range s.Progress(s.Total()) {
		if f != 1 {
			t.Errorf("Progress(total)[%d] = %v, want 1", i, f)
		}
	}
}

func TestProgressEaseOut(t *testing.T) {
	// One stroke of 250 units: duration exactly 1s at the default rate.
	s := New(decode(line(250)), Config{})
	if !almostEqual(s.Total(), 1.0) {
		t.Fatalf("Total() = %v, want 1.0", s.Total())
	}

	// Halfway in wall-clock is 75% drawn under 1-(1-x)^2.
	fracs := s.Progress(0.5)
	if !almostEqual(fracs[0], 0.75) {
		t.Errorf("Progress(0.5) = %v, want 0.75 (ease-out)", fracs[0])
	}
}

func TestProgressLoopWrap(t *testing.T) {
	s := New(decode(line(10), line(200), dot()), Config{})

	const eps = 0.01
	looped := s.ProgressLoop(s.Total() + eps)
	fresh := s.Progress(eps)

	for i := range fresh {
		if math.Abs(looped[i]-fresh[i]) > 1e-6 {
			t.Errorf("stroke %d: loop progress %v, fresh progress %v", i, looped[i], fresh[i])
		}
	}

	// Without looping, progress stays frozen at 100%.
	for i, f := range s.Progress(s.Total() + eps) {
		if f != 1 {
			t.Errorf("frozen progress[%d] = %v, want 1", i, f)
		}
	}
}

func TestDotShown(t *testing.T) {
	if DotShown(0.5) {
		t.Error("DotShown(0.5) = true, want false (strictly past midpoint)")
	}
	if !DotShown(0.51) {
		t.Error("DotShown(0.51) = false, want true")
	}
	if DotShown(0) {
		t.Error("DotShown(0) = true, want false")
	}
	if !DotShown(1) {
		t.Error("DotShown(1) = false, want true")
	}
}

func TestConfigDefaults(t *testing.T) {
	s := New(decode(line(10)), Config{})

	// 10 * 0.004 = 0.04 floors at the default minimum of 0.05.
	if !almostEqual(s.Duration(0), DefaultMinStrokeDuration) {
		t.Errorf("Duration(0) = %v, want default floor %v", s.Duration(0), DefaultMinStrokeDuration)
	}
}
