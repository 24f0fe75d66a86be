package plot

import (
	"math"
	"testing"
)

func TestScaleBounds(t *testing.T) {
	ranges := []Range{
		NewRange(0, 100),
		NewRange(480, 20),
		NewRange(13.7, 917.3),
	}
	for _, rg := range ranges {
		s := ComputeScale([]float64{3.3, 17.1, -2.9, 8}, rg)
		if got := s.Map(s.Min); got != rg.F {
			t.Errorf("Map(min) = %v, want %v", got, rg.F)
		}
		if got := s.Map(s.Max); got != rg.T {
			t.Errorf("Map(max) = %v, want %v", got, rg.T)
		}
	}
}

func TestScaleOptions(t *testing.T) {
	s := ComputeScale([]float64{45, 52, 61, 48}, NewRange(0, 100))
	if s.Min != 45 || s.Max != 61 {
		t.Errorf("domain mismatched! want [45, 61], got [%v, %v]", s.Min, s.Max)
	}
	s = ComputeScale([]float64{45, 52, 61, 48}, NewRange(0, 100), WithZero())
	if s.Min != 0 || s.Max != 61 {
		t.Errorf("domain mismatched! want [0, 61], got [%v, %v]", s.Min, s.Max)
	}
	s = ComputeScale([]float64{-5, -1}, NewRange(0, 100), WithZero())
	if s.Min != -5 || s.Max != 0 {
		t.Errorf("domain mismatched! want [-5, 0], got [%v, %v]", s.Min, s.Max)
	}
	s = ComputeScale(nil, NewRange(0, 100), WithDomain(10, -10))
	if s.Min != -10 || s.Max != 10 {
		t.Errorf("domain mismatched! want [-10, 10], got [%v, %v]", s.Min, s.Max)
	}
	if s.Count != DefaultTicks {
		t.Errorf("ticks mismatched! want %d, got %d", DefaultTicks, s.Count)
	}
}

func TestScaleDegenerate(t *testing.T) {
	s := ComputeScale([]float64{7, 7, 7}, NewRange(0, 200))
	if !s.Degenerate {
		t.Fatalf("scale should be degenerate")
	}
	for _, v := range []float64{7, 0, -100, 1e9} {
		if got := s.Map(v); got != 100 {
			t.Errorf("Map(%v) = %v, want 100", v, got)
		}
	}
	ticks := s.Ticks()
	if len(ticks) != 1 {
		t.Fatalf("degenerate scale should have one tick, got %d", len(ticks))
	}
	if ticks[0].Value != 7 || ticks[0].Position != 100 {
		t.Errorf("unexpected tick: %+v", ticks[0])
	}
}

func TestScaleTicks(t *testing.T) {
	s := ComputeScale([]float64{0, 100}, NewRange(0, 50), WithTicks(6))
	ticks := s.Ticks()
	if len(ticks) != 6 {
		t.Fatalf("ticks mismatched! want 6, got %d", len(ticks))
	}
	want := []float64{0, 20, 40, 60, 80, 100}
	for i := range want {
		if !almostEqual(ticks[i].Value, want[i], epsilon) {
			t.Errorf("tick %d: want %v, got %v", i, want[i], ticks[i].Value)
		}
		if !almostEqual(ticks[i].Position, want[i]/2, epsilon) {
			t.Errorf("tick %d: want position %v, got %v", i, want[i]/2, ticks[i].Position)
		}
	}
	if last := ticks[len(ticks)-1]; last.Value != s.Max || last.Position != s.Range.T {
		t.Errorf("last tick should be the max of the scale: %+v", last)
	}
}

func TestScaleInvert(t *testing.T) {
	s := ComputeScale([]float64{-20, 80}, NewRange(300, 0))
	for _, v := range []float64{-20, 0, 12.5, 80} {
		if got := s.Invert(s.Map(v)); !almostEqual(got, v, epsilon) {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestScaleOrder(t *testing.T) {
	values := []float64{-40, -2.5, 0, 0.1, 7, 7.5, 120}
	for _, rg := range []Range{NewRange(0, 500), NewRange(500, 0)} {
		s := ComputeScale(values, rg)
		for i := 1; i < len(values); i++ {
			prev, curr := s.Map(values[i-1]), s.Map(values[i])
			if rg.F < rg.T && prev >= curr {
				t.Errorf("%v: Map(%v) = %v should be before Map(%v) = %v", rg, values[i-1], prev, values[i], curr)
			}
			if rg.F > rg.T && prev <= curr {
				t.Errorf("%v: Map(%v) = %v should be after Map(%v) = %v", rg, values[i-1], prev, values[i], curr)
			}
		}
	}
}

func TestScaleWideDomain(t *testing.T) {
	s := ComputeScale([]float64{-1e308, 1e308}, NewRange(0, 100))
	if got := s.Map(s.Min); got != 0 {
		t.Errorf("Map(min) = %v, want 0", got)
	}
	if got := s.Map(s.Max); got != 100 {
		t.Errorf("Map(max) = %v, want 100", got)
	}
	if got := s.Map(0); got != 50 {
		t.Errorf("Map(0) = %v, want 50", got)
	}
	ticks := s.Ticks()
	for i, k := range ticks {
		if math.IsNaN(k.Position) || math.IsInf(k.Value, 0) {
			t.Fatalf("tick %d is not finite: %+v", i, k)
		}
		if i > 0 && k.Position <= ticks[i-1].Position {
			t.Errorf("tick %d should follow tick %d: %+v", i, i-1, ticks)
		}
	}
}
