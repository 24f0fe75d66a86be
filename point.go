package plot

import (
	"math"
	"strconv"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Adjust(x, y float64) Point {
	p.X += x
	p.Y += y
	return p
}

type Op int

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

// Segment is one command of a Path. RX, RY, Large and Sweep are only
// meaningful for arcs.
type Segment struct {
	Op    Op
	To    Point
	RX    float64
	RY    float64
	Large bool
	Sweep bool
}

// Path is an outline made of absolute commands.
type Path []Segment

func (p *Path) MoveTo(pos Point) {
	*p = append(*p, Segment{Op: OpMove, To: pos})
}

func (p *Path) LineTo(pos Point) {
	*p = append(*p, Segment{Op: OpLine, To: pos})
}

func (p *Path) ArcTo(pos Point, radius float64, large, sweep bool) {
	s := Segment{
		Op:    OpArc,
		To:    pos,
		RX:    radius,
		RY:    radius,
		Large: large,
		Sweep: sweep,
	}
	*p = append(*p, s)
}

func (p *Path) Close() {
	*p = append(*p, Segment{Op: OpClose})
}

// String returns the path as SVG path data.
func (p Path) String() string {
	var buf []byte
	for i, s := range p {
		if i > 0 {
			buf = append(buf, ' ')
		}
		switch s.Op {
		case OpMove:
			buf = append(buf, 'M', ' ')
			buf = appendPoint(buf, s.To)
		case OpLine:
			buf = append(buf, 'L', ' ')
			buf = appendPoint(buf, s.To)
		case OpArc:
			buf = append(buf, 'A', ' ')
			buf = appendFloat(buf, s.RX)
			buf = append(buf, ' ')
			buf = appendFloat(buf, s.RY)
			buf = append(buf, ' ', '0', ' ')
			buf = appendFlag(buf, s.Large)
			buf = append(buf, ' ')
			buf = appendFlag(buf, s.Sweep)
			buf = append(buf, ' ')
			buf = appendPoint(buf, s.To)
		case OpClose:
			buf = append(buf, 'Z')
		}
	}
	return string(buf)
}

func appendPoint(buf []byte, p Point) []byte {
	buf = appendFloat(buf, p.X)
	buf = append(buf, ' ')
	return appendFloat(buf, p.Y)
}

func appendFlag(buf []byte, b bool) []byte {
	if b {
		return append(buf, '1')
	}
	return append(buf, '0')
}

const pathPrecision = 2

func appendFloat(buf []byte, f float64) []byte {
	var (
		prec  = pathPrecision
		scale = math.Pow10(pathPrecision)
	)
	f = math.Round(f*scale) / scale
	if math.Trunc(f) == f {
		prec = 0
	}
	if f == 0 {
		// negative zero
		f = 0
	}
	return strconv.AppendFloat(buf, f, 'f', prec, 64)
}
