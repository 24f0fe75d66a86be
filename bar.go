package plot

import (
	"math"
)

const DefaultBarRatio = 0.6

// BarLayout describes the horizontal slots of a bar chart. Bars occupy
// Ratio of their Slot and are centered in it. Start is the coordinate of
// the first slot.
type BarLayout struct {
	Start float64
	Slot  float64
	Ratio float64
}

// SlotLayout divides width in count equal slots.
func SlotLayout(width float64, count int) BarLayout {
	var slot float64
	if count > 0 {
		slot = width / float64(count)
	}
	return BarLayout{
		Slot:  slot,
		Ratio: DefaultBarRatio,
	}
}

func (b BarLayout) ratio() float64 {
	if b.Ratio <= 0 || b.Ratio > 1 {
		return DefaultBarRatio
	}
	return b.Ratio
}

func (b BarLayout) width() float64 {
	return b.Slot * b.ratio()
}

func (b BarLayout) offset(i int) float64 {
	return b.Start + float64(i)*b.Slot
}

// Bar is a rectangle anchored on the baseline of its scale.
type Bar struct {
	Index  int
	Serie  int
	Label  string
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
	Style  SeriesStyle
}

// ComputeBars creates one bar per value. Heights are measured from the
// coordinate of 0 so that negative values grow on the other side of the
// baseline. The scale is widened to 0 and to the values when it misses
// them, so only a zero value gives a zero height.
func ComputeBars(values []float64, scale Scale, layout BarLayout) []Bar {
	scale = scale.cover(values)
	var (
		list = make([]Bar, 0, len(values))
		base = scale.Baseline()
		w    = layout.width()
		o    = (layout.Slot - w) / 2
	)
	for i, v := range values {
		b := makeBar(v, scale.Map(v), base)
		b.Index = i
		b.X = layout.offset(i) + o
		b.Width = w
		list = append(list, b)
	}
	return list
}

// ComputeGroupedBars places the bars of several series side by side in the
// slot of their category. Bars are ordered by category then by serie.
func ComputeGroupedBars(series [][]float64, scale Scale, layout BarLayout) []Bar {
	if len(series) == 0 {
		return nil
	}
	if len(series) == 1 {
		return ComputeBars(series[0], scale, layout)
	}
	for _, s := range series {
		scale = scale.cover(s)
	}
	var (
		count int
		list  []Bar
		base  = scale.Baseline()
		group = layout.width()
		o     = (layout.Slot - group) / 2
		w     = group / float64(len(series))
	)
	for _, s := range series {
		count = max(count, len(s))
	}
	for i := 0; i < count; i++ {
		for j, s := range series {
			if i >= len(s) {
				continue
			}
			b := makeBar(s[i], scale.Map(s[i]), base)
			b.Index = i
			b.Serie = j
			b.X = layout.offset(i) + o + float64(j)*w
			b.Width = w
			list = append(list, b)
		}
	}
	return list
}

func makeBar(value, pos, base float64) Bar {
	return Bar{
		Value:  value,
		Y:      math.Min(pos, base),
		Height: math.Abs(pos - base),
	}
}

// Gridlines returns the ticks of the scale to draw across the plot.
func Gridlines(scale Scale) []Tick {
	return scale.Ticks()
}
