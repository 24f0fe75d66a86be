package plot

import (
	"math"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// Pie describes the circle sectors are cut from. An InnerRadius greater
// than zero produces donut sectors.
type Pie struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
}

// Sector is one wedge of a pie. Angles are in degrees, 0 pointing east and
// growing clockwise in a y-down coordinate system.
type Sector struct {
	Index      int
	Label      string
	Value      float64
	Share      float64
	StartAngle float64
	EndAngle   float64
	// Large is set when the sector spans more than half of the circle.
	Large bool
	// Full is set for the only sector of a serie covering the whole circle.
	Full   bool
	Path   Path
	Anchor Point
	Style  SeriesStyle
}

func (s Sector) Angle() float64 {
	return s.EndAngle - s.StartAngle
}

func (s Sector) Empty() bool {
	return s.StartAngle == s.EndAngle
}

// ComputePieSectors splits the circle of p between values in proportion of
// their share of the total. There is one sector per value, in the order of
// values, including sectors for zero values.
func ComputePieSectors(values []float64, p Pie) ([]Sector, error) {
	if len(values) == 0 {
		return nil, EmptyDatasetError{}
	}
	var total float64
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, InvalidValueError{Index: i, Value: v}
		}
		total += v
	}
	if math.IsInf(total, 1) {
		return nil, OverflowError{}
	}
	if total <= 0 {
		return nil, NonPositiveTotalError{Total: total}
	}
	for i, v := range values {
		if v < 0 {
			return nil, InvalidValueError{Index: i, Value: v}
		}
	}
	var (
		list = make([]Sector, 0, len(values))
		cum  float64
	)
	for i, v := range values {
		s := Sector{
			Index:      i,
			Value:      v,
			Share:      v / total,
			StartAngle: fullcircle * (cum / total),
		}
		cum += v
		s.EndAngle = fullcircle * (cum / total)
		s.Large = s.Angle() > halfcircle
		s.Full = v == total
		if s.Full {
			s.StartAngle, s.EndAngle = 0, fullcircle
		}
		s.Path = p.outline(s)
		s.Anchor = p.anchor(s)
		list = append(list, s)
	}
	return list, nil
}

func (p Pie) outline(s Sector) Path {
	var pat Path
	switch {
	case s.Empty():
	case s.Full:
		pat = p.circle(s.StartAngle)
	case p.InnerRadius > 0:
		pat.MoveTo(p.outer(s.StartAngle))
		pat.ArcTo(p.outer(s.EndAngle), p.OuterRadius, s.Large, true)
		pat.LineTo(p.inner(s.EndAngle))
		pat.ArcTo(p.inner(s.StartAngle), p.InnerRadius, s.Large, false)
		pat.Close()
	default:
		pat.MoveTo(p.Center)
		pat.LineTo(p.outer(s.StartAngle))
		pat.ArcTo(p.outer(s.EndAngle), p.OuterRadius, s.Large, true)
		pat.Close()
	}
	return pat
}

// circle draws the whole ring as two half arcs since an arc can not end on
// its starting point.
func (p Pie) circle(angle float64) Path {
	var (
		pat  Path
		half = angle + halfcircle
	)
	pat.MoveTo(p.outer(angle))
	pat.ArcTo(p.outer(half), p.OuterRadius, false, true)
	pat.ArcTo(p.outer(angle), p.OuterRadius, false, true)
	pat.Close()
	if p.InnerRadius > 0 {
		pat.MoveTo(p.inner(angle))
		pat.ArcTo(p.inner(half), p.InnerRadius, false, false)
		pat.ArcTo(p.inner(angle), p.InnerRadius, false, false)
		pat.Close()
	}
	return pat
}

func (p Pie) anchor(s Sector) Point {
	var (
		mid    = s.StartAngle + s.Angle()/2
		radius = p.InnerRadius + (p.OuterRadius-p.InnerRadius)*0.6
	)
	return p.at(mid, radius)
}

func (p Pie) outer(angle float64) Point {
	return p.at(angle, p.OuterRadius)
}

func (p Pie) inner(angle float64) Point {
	return p.at(angle, p.InnerRadius)
}

func (p Pie) at(angle, radius float64) Point {
	rad := angle * deg2rad
	return Point{
		X: p.Center.X + radius*math.Cos(rad),
		Y: p.Center.Y + radius*math.Sin(rad),
	}
}
