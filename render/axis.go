package render

import (
	"github.com/midbel/plot"
	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws labels computed by the engine along one side of the drawing
// area. Label positions are relative to the start of the axis.
type Axis struct {
	Orientation
	Labels         []plot.Label
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
	WithBands      bool
}

func (a Axis) Render(length, size, left, top float64) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "axis")
	g.Transform = svg.Translate(left, top)

	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	for i, lb := range a.Labels {
		var grp svg.Group
		grp.Transform = svg.Translate(lb.Position, 0)
		if a.Vertical() {
			grp.Transform = svg.Translate(0, lb.Position)
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, lb.Text, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks {
			sk := d.Stroke
			sk.Opacity = 0.1
			tick := lineTick(a.Orientation, -size, sk)
			grp.Append(tick.AsElement())
		}
		if a.WithBands && i%2 == 0 && len(a.Labels) > 1 {
			rec := tickBand(a.Orientation, size, length/float64(len(a.Labels)-1))
			grp.Append(rec.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func tickBand(orient Orientation, width, height float64) svg.Rect {
	var rec svg.Rect
	rec.Pos = svg.NewPos(0, 0)
	rec.Dim = svg.NewDim(width, height)
	if !orient.Vertical() {
		rec.Dim.W, rec.Dim.H = rec.Dim.H, rec.Dim.W
		if !orient.Reverse() {
			rec.Transform.RA = 180
			rec.Transform.TX = rec.Dim.W
		}
	}
	rec.Fill = svg.NewFill("currentColor")
	rec.Fill.Opacity = 0.05
	return rec
}

func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
