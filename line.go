package plot

type LinePoint struct {
	Index int
	X     float64
	Y     float64
	Value float64
}

func (p LinePoint) Point() Point {
	return NewPoint(p.X, p.Y)
}

// Line is the polyline of one serie.
type Line struct {
	Serie  int
	Points []LinePoint
	Path   Path
	Style  SeriesStyle
}

// ComputeLines creates one Line per serie. Points are evenly spaced on x
// by category index and all series are plotted with the same y scale. A
// serie with a single point is pinned to the start of x.
func ComputeLines(series [][]float64, x Range, y Scale) []Line {
	var count int
	for _, s := range series {
		count = max(count, len(s))
	}
	var (
		list   = make([]Line, 0, len(series))
		xscale = IndexScale(count, x)
	)
	for i, s := range series {
		ln := Line{
			Serie:  i,
			Points: make([]LinePoint, 0, len(s)),
		}
		for j, v := range s {
			pt := LinePoint{
				Index: j,
				X:     xscale.Map(float64(j)),
				Y:     y.Map(v),
				Value: v,
			}
			if j == 0 {
				ln.Path.MoveTo(pt.Point())
			} else {
				ln.Path.LineTo(pt.Point())
			}
			ln.Points = append(ln.Points, pt)
		}
		list = append(list, ln)
	}
	return list
}

// IndexScale maps category indices [0, count-1] onto rg.
func IndexScale(count int, rg Range) Scale {
	if count <= 1 {
		// a single category sits at the start of the range
		rg.T = rg.F
		return ComputeScale(nil, rg, WithDomain(0, 1), WithTicks(1))
	}
	return ComputeScale(nil, rg, WithDomain(0, float64(count-1)), WithTicks(count))
}
