package render

import (
	"github.com/midbel/svg"
)

// DefaultMarkerSize is the width of the markers of a Canvas built with
// FromChart.
const DefaultMarkerSize = 6.0

// Marker draws the mark of a line point centered on pos. size is the width
// of the shape and color the color of the line.
type Marker func(pos svg.Pos, size float64, color string) svg.Element

func Circle(pos svg.Pos, size float64, color string) svg.Element {
	el := svg.Circle{
		Pos:    pos,
		Radius: size / 2,
		Fill:   svg.NewFill(color),
	}
	return el.AsElement()
}

func Square(pos svg.Pos, size float64, color string) svg.Element {
	half := size / 2
	el := svg.Rect{
		Pos:  svg.NewPos(pos.X-half, pos.Y-half),
		Dim:  svg.NewDim(size, size),
		Fill: svg.NewFill(color),
	}
	return el.AsElement()
}

// Diamond is a square standing on one of its corners. Its diagonals have
// the size of the marker.
func Diamond(pos svg.Pos, size float64, color string) svg.Element {
	half := size / 2
	el := svg.Polygon{
		Points: []svg.Pos{
			svg.NewPos(pos.X, pos.Y-half),
			svg.NewPos(pos.X+half, pos.Y),
			svg.NewPos(pos.X, pos.Y+half),
			svg.NewPos(pos.X-half, pos.Y),
		},
		Fill: svg.NewFill(color),
	}
	return el.AsElement()
}

// MarkerByName returns the marker registered under name. Unknown names give
// no marker.
func MarkerByName(name string) Marker {
	switch name {
	case "circle":
		return Circle
	case "square":
		return Square
	case "diamond":
		return Diamond
	default:
		return nil
	}
}
