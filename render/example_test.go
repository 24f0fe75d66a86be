package render_test

import (
	"fmt"
	"os"

	"github.com/midbel/plot"
	"github.com/midbel/plot/render"
)

func preferences() plot.Dataset {
	return plot.Dataset{
		Labels: []string{"go", "javascript", "python", "rust", "java", "c++"},
		Series: []plot.Serie{
			plot.NewSerie("preferences", 95, 25, 60, 10, 5, 70),
		},
	}
}

func ExampleCanvas_Pie() {
	ch := plot.Chart{
		Width:      800,
		Height:     600,
		Padding:    plot.Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		InnerRatio: 0.5,
	}
	pc, err := ch.Pie(preferences())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	cv := render.FromChart(ch)
	cv.Palette = render.Palette{"steelblue", "lightsalmon", "mediumorchid", "firebrick"}
	cv.WithValues = true
	cv.Pie(os.Stdout, pc)
}

func ExampleCanvas_Bar() {
	ch := plot.Chart{
		Width:    800,
		Height:   600,
		Padding:  plot.Padding{Top: 10, Right: 45, Bottom: 40, Left: 60},
		BarRatio: 0.5,
	}
	bc, err := ch.Bar(preferences())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	cv := render.FromChart(ch)
	cv.Palette = render.Palette{"steelblue"}
	cv.Bar(os.Stdout, bc)
}
