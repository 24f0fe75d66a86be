package dash

import (
	"github.com/midbel/plot"
	"github.com/midbel/plot/render"
)

const (
	PaletteTableau  = "tableau10"
	PaletteCategory = "category10"
)

// Style holds the presentation options of a chart. Options left empty in
// a chart are taken from the style of the dashboard.
type Style struct {
	Palette     string  `yaml:"palette"`
	Point       string  `yaml:"point"`
	InnerRadius float64 `yaml:"inner-radius"`
	BarRatio    float64 `yaml:"bar-ratio"`
	Legend      *bool   `yaml:"legend"`
	Values      *bool   `yaml:"values"`
}

func GlobalStyle() Style {
	var (
		legend = true
		values = false
	)
	return Style{
		Palette: PaletteTableau,
		Legend:  &legend,
		Values:  &values,
	}
}

func (s Style) merge(g Style) Style {
	if s.Palette == "" {
		s.Palette = g.Palette
	}
	if s.Point == "" {
		s.Point = g.Point
	}
	if s.InnerRadius == 0 && g.InnerRadius != 0 {
		s.InnerRadius = g.InnerRadius
	}
	if s.BarRatio == 0 && g.BarRatio != 0 {
		s.BarRatio = g.BarRatio
	}
	if s.Legend == nil {
		s.Legend = g.Legend
	}
	if s.Values == nil {
		s.Values = g.Values
	}
	return s
}

func (s Style) apply(ch *plot.Chart, cv *render.Canvas) {
	ch.InnerRatio = s.InnerRadius
	ch.BarRatio = s.BarRatio

	cv.Palette = render.PaletteByName(s.Palette)
	cv.Marker = render.MarkerByName(s.Point)
	cv.WithLegend = s.Legend != nil && *s.Legend
	cv.WithValues = s.Values != nil && *s.Values
}
