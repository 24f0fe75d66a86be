package plot

import (
	"math"
)

const DefaultTicks = 5

// Range is an interval of coordinates. F can be greater than T to flip an
// axis (eg: pixel y coordinates growing downward).
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) Mid() float64 {
	return r.F + r.Len()/2
}

// Scale is the linear mapping of the domain [Min, Max] onto Range.
type Scale struct {
	Min   float64
	Max   float64
	Range Range
	// Degenerate is set when Min == Max. All values are then mapped to the
	// middle of Range.
	Degenerate bool
	// Count is the number of ticks produced by Ticks.
	Count int
}

type ScaleOption func(*scaleConfig)

type scaleConfig struct {
	domain   bool
	min, max float64
	zero     bool
	ticks    int
}

// WithDomain replaces the extremes computed from the values. It is used
// when several series share one scale.
func WithDomain(min, max float64) ScaleOption {
	return func(c *scaleConfig) {
		c.domain = true
		c.min, c.max = min, max
	}
}

// WithZero extends the domain so that it always includes 0.
func WithZero() ScaleOption {
	return func(c *scaleConfig) {
		c.zero = true
	}
}

func WithTicks(n int) ScaleOption {
	return func(c *scaleConfig) {
		c.ticks = n
	}
}

// ComputeScale creates the Scale mapping values onto rg.
func ComputeScale(values []float64, rg Range, options ...ScaleOption) Scale {
	var cfg scaleConfig
	for _, o := range options {
		o(&cfg)
	}
	if !cfg.domain {
		cfg.min, cfg.max = extent(values)
	}
	if cfg.min > cfg.max {
		cfg.min, cfg.max = cfg.max, cfg.min
	}
	if cfg.zero {
		cfg.min = math.Min(cfg.min, 0)
		cfg.max = math.Max(cfg.max, 0)
	}
	if cfg.ticks <= 0 {
		cfg.ticks = DefaultTicks
	}
	return Scale{
		Min:        cfg.min,
		Max:        cfg.max,
		Range:      rg,
		Degenerate: cfg.max-cfg.min == 0,
		Count:      cfg.ticks,
	}
}

func (s Scale) Extend() float64 {
	return s.Max - s.Min
}

// Map converts v into a coordinate of the scale range. Map(Min) and
// Map(Max) are exactly the bounds of the range.
func (s Scale) Map(v float64) float64 {
	if s.Degenerate {
		return s.Range.Mid()
	}
	t := s.ratio(v)
	return s.Range.F*(1-t) + s.Range.T*t
}

func (s Scale) ratio(v float64) float64 {
	if d := s.Extend(); !math.IsInf(d, 0) {
		return (v - s.Min) / d
	}
	return (v/2 - s.Min/2) / (s.Max/2 - s.Min/2)
}

// Invert converts a coordinate back into a value of the domain.
func (s Scale) Invert(pos float64) float64 {
	if s.Degenerate || s.Range.Len() == 0 {
		return s.Min
	}
	t := (pos - s.Range.F) / s.Range.Len()
	return s.Min*(1-t) + s.Max*t
}

// cover extends the domain of s to 0 and to values.
func (s Scale) cover(values []float64) Scale {
	lo, hi := extent(values)
	s.Min = math.Min(s.Min, math.Min(lo, 0))
	s.Max = math.Max(s.Max, math.Max(hi, 0))
	s.Degenerate = s.Max-s.Min == 0
	return s
}

// Baseline is the coordinate of the value 0.
func (s Scale) Baseline() float64 {
	return s.Map(0)
}

// Values returns Count evenly spaced values from Min to Max inclusive. A
// degenerate scale has a single value.
func (s Scale) Values() []float64 {
	count := s.Count
	if count <= 0 {
		count = DefaultTicks
	}
	if s.Degenerate || count == 1 {
		return []float64{s.Min}
	}
	var (
		all  = make([]float64, count)
		step = s.Extend() / float64(count-1)
		wide = math.IsInf(step, 0)
	)
	for i := 0; i < count-1; i++ {
		if wide {
			t := float64(i) / float64(count-1)
			all[i] = s.Min*(1-t) + s.Max*t
			continue
		}
		all[i] = s.Min + float64(i)*step
	}
	all[count-1] = s.Max
	return all
}

// Tick is a value of the domain and its coordinate.
type Tick struct {
	Value    float64
	Position float64
}

func (s Scale) Ticks() []Tick {
	var list []Tick
	for _, v := range s.Values() {
		t := Tick{
			Value:    v,
			Position: s.Map(v),
		}
		list = append(list, t)
	}
	return list
}

func extent(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
