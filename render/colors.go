package render

import (
	"strings"

	"github.com/midbel/plot"
)

// Palette gives the colors of series and categories without their own.
type Palette []string

var (
	Category10 = Palette{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
	Tableau10 = Palette{
		"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
		"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
	}
)

// PaletteByName returns the palette registered under name, Tableau10 when
// no palette has this name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(name) {
	case "category10":
		return Category10
	default:
		return Tableau10
	}
}

// Color returns the color of style or, when not set, the color of the
// palette for i.
func (p Palette) Color(style plot.SeriesStyle, i int) string {
	if style.Color != "" {
		return style.Color
	}
	if len(p) == 0 {
		return currentColour
	}
	return p[i%len(p)]
}
