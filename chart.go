package plot

import (
	"math"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart runs the whole pipeline for one chart: the dataset is normalized,
// scaled, turned into geometry and labeled. Coordinates of the returned
// geometry are relative to the drawing area (the chart minus its padding)
// with y growing downward.
type Chart struct {
	Width  float64
	Height float64

	Padding

	// Ticks is the number of ticks of the value axis.
	Ticks int
	// BarRatio is the part of a category slot filled by its bars.
	BarRatio float64
	// InnerRatio is the radius of the hole of a donut relative to the
	// outer radius. Zero draws a plain pie.
	InnerRatio float64
	Formatter  Formatter
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) labeler() Labeler {
	return Labeler{
		Formatter: c.Formatter,
	}
}

func (c Chart) ticks() int {
	if c.Ticks <= 0 {
		return DefaultTicks
	}
	return c.Ticks
}

type PieChart struct {
	Pie     Pie
	Total   float64
	Sectors []Sector
	// Values are the formatted values of the sectors. Position is the angle
	// at the middle of the sector.
	Values []Label
}

func (c Chart) Pie(ds Dataset) (PieChart, error) {
	var ch PieChart
	cn, err := Normalize(ds, KindPie)
	if err != nil {
		return ch, err
	}
	var (
		width  = c.DrawingWidth()
		height = c.DrawingHeight()
		radius = math.Min(width, height) / 2
		serie  = cn.Series[0]
	)
	ch.Pie = Pie{
		Center:      NewPoint(width/2, height/2),
		OuterRadius: radius,
		InnerRadius: radius * math.Max(0, math.Min(c.InnerRatio, 1)),
	}
	if ch.Pie.InnerRadius == radius {
		ch.Pie.InnerRadius = 0
	}
	ch.Sectors, err = ComputePieSectors(serie.Values, ch.Pie)
	if err != nil {
		return PieChart{}, err
	}
	ch.Total = serie.Total()

	lb := c.labeler()
	for i := range ch.Sectors {
		s := &ch.Sectors[i]
		s.Label = cn.Labels[i]
		s.Style = categoryStyle(cn, i)

		v := Label{
			Index:    i,
			Value:    s.Value,
			Position: s.StartAngle + s.Angle()/2,
			Text:     lb.format(s.Value),
		}
		ch.Values = append(ch.Values, v)
	}
	return ch, nil
}

type BarChart struct {
	Bars   []Bar
	Scale  Scale
	Layout BarLayout
	// Grid are the ticks of the value axis.
	Grid []Label
	// Categories are the labels at the center of each slot.
	Categories []Label
	// Values are the formatted values of bars. Position is the end of the
	// bar opposite to the baseline.
	Values []Label
}

func (c Chart) Bar(ds Dataset) (BarChart, error) {
	var ch BarChart
	cn, err := Normalize(ds, KindBar)
	if err != nil {
		return ch, err
	}
	ch.Scale = ComputeScale(cn.Values(), NewRange(c.DrawingHeight(), 0), WithZero(), WithTicks(c.ticks()))
	ch.Layout = SlotLayout(c.DrawingWidth(), cn.Len())
	if c.BarRatio > 0 {
		ch.Layout.Ratio = c.BarRatio
	}
	ch.Bars = ComputeGroupedBars(cn.Matrix(), ch.Scale, ch.Layout)

	lb := c.labeler()
	for i := range ch.Bars {
		b := &ch.Bars[i]
		b.Label = cn.Labels[b.Index]
		if len(cn.Series) == 1 {
			b.Style = categoryStyle(cn, b.Index)
		} else {
			b.Style = cn.Series[b.Serie].SeriesStyle
		}
		pos := b.Y
		if b.Value < 0 {
			pos += b.Height
		}
		v := Label{
			Index:    i,
			Value:    b.Value,
			Position: pos,
			Text:     lb.format(b.Value),
		}
		ch.Values = append(ch.Values, v)
	}
	ch.Grid = lb.Ticks(ch.Scale)
	for i, str := range cn.Labels {
		cat := Label{
			Index:    i,
			Position: ch.Layout.offset(i) + ch.Layout.Slot/2,
			Text:     str,
		}
		ch.Categories = append(ch.Categories, cat)
	}
	return ch, nil
}

type LineChart struct {
	Lines      []Line
	X          Range
	Y          Scale
	Grid       []Label
	Categories []Label
}

func (c Chart) Line(ds Dataset) (LineChart, error) {
	var ch LineChart
	cn, err := Normalize(ds, KindLine)
	if err != nil {
		return ch, err
	}
	ch.X = NewRange(0, c.DrawingWidth())
	ch.Y = ComputeScale(cn.Values(), NewRange(c.DrawingHeight(), 0), WithTicks(c.ticks()))
	ch.Lines = ComputeLines(cn.Matrix(), ch.X, ch.Y)
	for i := range ch.Lines {
		ch.Lines[i].Style = cn.Series[i].SeriesStyle
	}
	ch.Grid = c.labeler().Ticks(ch.Y)

	xscale := IndexScale(cn.Len(), ch.X)
	for i, str := range cn.Labels {
		cat := Label{
			Index:    i,
			Position: xscale.Map(float64(i)),
			Text:     str,
		}
		ch.Categories = append(ch.Categories, cat)
	}
	return ch, nil
}

func categoryStyle(cn Canonical, i int) SeriesStyle {
	style := cn.Category(i)
	if style.Name == "" {
		style.Name = cn.Labels[i]
	}
	return style
}
