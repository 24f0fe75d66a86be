package render

import (
	"io"

	"github.com/midbel/plot"
)

// Draw computes the geometry of ds for the requested kind and paints it
// with cv. Nothing is written to w when the dataset is rejected.
func Draw(w io.Writer, kind plot.Kind, ch plot.Chart, cv Canvas, ds plot.Dataset) error {
	switch kind {
	case plot.KindPie:
		pc, err := ch.Pie(ds)
		if err != nil {
			return err
		}
		return cv.Pie(w, pc)
	case plot.KindLine:
		lc, err := ch.Line(ds)
		if err != nil {
			return err
		}
		return cv.Line(w, lc)
	default:
		bc, err := ch.Bar(ds)
		if err != nil {
			return err
		}
		return cv.Bar(w, bc)
	}
}
