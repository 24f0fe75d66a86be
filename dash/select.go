package dash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrIndex = errors.New("invalid index")

type Indexer interface {
	columns() []int
}

// Selector extracts the values of one or more series from a csv row.
type Selector interface {
	Select([]string) ([]float64, error)
	// Names gives the name of each value returned by Select from the header
	// of the file.
	Names([]string) []string
	Indexer
}

type combined struct {
	selectors []Selector
}

func Combined(xs ...Selector) Selector {
	if len(xs) == 1 {
		return xs[0]
	}
	return combined{
		selectors: xs,
	}
}

func (c combined) columns() []int {
	var list []int
	for _, s := range c.selectors {
		list = append(list, s.columns()...)
	}
	return list
}

func (c combined) Names(header []string) []string {
	var list []string
	for _, s := range c.selectors {
		list = append(list, s.Names(header)...)
	}
	return list
}

func (c combined) Select(row []string) ([]float64, error) {
	var list []float64
	for _, s := range c.selectors {
		fs, err := s.Select(row)
		if err != nil {
			return nil, err
		}
		list = append(list, fs...)
	}
	return list, nil
}

type summer struct {
	index []int
}

func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) columns() []int {
	return s.index
}

func (s summer) Names(header []string) []string {
	var list []string
	for _, i := range s.index {
		list = append(list, columnName(header, i))
	}
	return []string{strings.Join(list, "+")}
}

func (s summer) Select(row []string) ([]float64, error) {
	var sum float64
	for _, i := range s.index {
		f, err := parseCell(row, i)
		if err != nil {
			return nil, err
		}
		sum += f
	}
	return []float64{sum}, nil
}

type multi struct {
	index []int
}

func SelectSingle(i int) Selector {
	return SelectMulti([]int{i})
}

func SelectMulti(list []int) Selector {
	return multi{
		index: list,
	}
}

func (m multi) columns() []int {
	return m.index
}

func (m multi) Names(header []string) []string {
	list := make([]string, 0, len(m.index))
	for _, i := range m.index {
		list = append(list, columnName(header, i))
	}
	return list
}

func (m multi) Select(row []string) ([]float64, error) {
	list := make([]float64, 0, len(m.index))
	for _, i := range m.index {
		f, err := parseCell(row, i)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

// ParseSelector parses a list of columns separated by commas. A column is
// an index, a range (1:3) or a sum of indices (1+2) that gives a single
// serie.
func ParseSelector(str string) (Selector, error) {
	var list []Selector
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var (
			sel Selector
			err error
		)
		switch {
		case strings.Contains(part, "+"):
			var ix []int
			for _, p := range strings.Split(part, "+") {
				i, err := parseIndex(p)
				if err != nil {
					return nil, err
				}
				ix = append(ix, i)
			}
			sel = SelectSum(ix)
		case strings.Contains(part, ":"):
			fst, lst, _ := strings.Cut(part, ":")
			var beg, end int
			if beg, err = parseIndex(fst); err != nil {
				return nil, err
			}
			if end, err = parseIndex(lst); err != nil {
				return nil, err
			}
			if end < beg {
				return nil, fmt.Errorf("%w: %s: empty range", ErrIndex, part)
			}
			sel = SelectMulti(ExpandRange(beg, end))
		default:
			i, err := parseIndex(part)
			if err != nil {
				return nil, err
			}
			sel = SelectSingle(i)
		}
		list = append(list, sel)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no column selected", ErrIndex)
	}
	return Combined(list...), nil
}

func parseIndex(str string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrIndex, str)
	}
	return i, nil
}

func parseCell(row []string, i int) (float64, error) {
	if i < 0 || i >= len(row) {
		return 0, fmt.Errorf("%w: column %d", ErrIndex, i)
	}
	str := strings.TrimSpace(row[i])
	if str == "" {
		return 0, nil
	}
	return strconv.ParseFloat(str, 64)
}

func columnName(header []string, i int) string {
	if i >= 0 && i < len(header) {
		return header[i]
	}
	return strconv.Itoa(i)
}
