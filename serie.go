package plot

import (
	"math"
)

// Serie is one ordered sequence of values of a dataset.
type Serie struct {
	SeriesStyle
	Values []float64
}

func NewSerie(name string, values ...float64) Serie {
	s := Serie{
		Values: values,
	}
	s.Name = name
	return s
}

func (s Serie) Total() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

func (s Serie) clone() Serie {
	c := s
	c.Values = make([]float64, len(s.Values))
	copy(c.Values, s.Values)
	return c
}

// Dataset is the raw input of a chart: category labels and one or more
// series of the same length. Categories optionally carries one style per
// label.
type Dataset struct {
	Labels     []string
	Series     []Serie
	Categories []SeriesStyle
}

// Canonical is a validated copy of a Dataset. It shares no memory with the
// dataset it was created from.
type Canonical struct {
	Labels     []string
	Series     []Serie
	Categories []SeriesStyle
}

// Normalize validates ds and returns a canonical copy of it. Pie datasets
// also require the first serie to have a positive total. Categories may be
// fewer than labels, missing ones are left to the renderer.
func Normalize(ds Dataset, kind Kind) (Canonical, error) {
	var c Canonical
	for i, s := range ds.Series {
		if len(s.Values) != len(ds.Labels) {
			return c, LengthMismatchError{
				Serie: i,
				Want:  len(ds.Labels),
				Got:   len(s.Values),
			}
		}
	}
	if len(ds.Categories) > len(ds.Labels) {
		return c, LengthMismatchError{
			Serie: -1,
			Want:  len(ds.Labels),
			Got:   len(ds.Categories),
		}
	}
	if len(ds.Labels) == 0 || len(ds.Series) == 0 {
		return c, EmptyDatasetError{}
	}
	for i, s := range ds.Series {
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return c, InvalidValueError{
					Serie: i,
					Index: j,
					Value: v,
				}
			}
		}
	}
	// The spread from zero bounds every extent a scale is built on.
	var lo, hi float64
	for i, s := range ds.Series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if math.IsInf(hi-lo, 0) {
			return c, OverflowError{Serie: i}
		}
	}
	if kind == KindPie {
		total := ds.Series[0].Total()
		if math.IsInf(total, 1) {
			return c, OverflowError{}
		}
		if total <= 0 {
			return c, NonPositiveTotalError{Total: total}
		}
	}

	c.Labels = make([]string, len(ds.Labels))
	copy(c.Labels, ds.Labels)
	c.Series = make([]Serie, 0, len(ds.Series))
	for _, s := range ds.Series {
		c.Series = append(c.Series, s.clone())
	}
	if len(ds.Categories) > 0 {
		c.Categories = make([]SeriesStyle, len(ds.Labels))
		copy(c.Categories, ds.Categories)
	}
	return c, nil
}

func (c Canonical) Len() int {
	return len(c.Labels)
}

// Values returns the values of all the series in one slice.
func (c Canonical) Values() []float64 {
	var all []float64
	for _, s := range c.Series {
		all = append(all, s.Values...)
	}
	return all
}

func (c Canonical) Matrix() [][]float64 {
	var list [][]float64
	for _, s := range c.Series {
		list = append(list, s.Values)
	}
	return list
}

// Category returns the style of the category at index i. The zero style is
// returned when no style has been given.
func (c Canonical) Category(i int) SeriesStyle {
	if i < 0 || i >= len(c.Categories) {
		return SeriesStyle{}
	}
	return c.Categories[i]
}
