package dash

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/midbel/plot"
	"github.com/midbel/slices"
)

var ErrSource = errors.New("invalid data source")

// dataset returns the dataset of the chart, read from its file when one is
// given. Colors of the chart are attached to the categories whose label
// they name.
func (c ChartConfig) dataset(ctx context.Context, cfg Config) (plot.Dataset, error) {
	var (
		ds  plot.Dataset
		err error
	)
	if c.File != nil {
		delim := c.File.Delimiter
		if delim == "" {
			delim = cfg.Delimiter
		}
		ds, err = c.File.Load(ctx, delim)
		if err != nil {
			return ds, err
		}
	} else {
		ds.Labels = append(ds.Labels, c.Labels...)
		for _, s := range c.Series {
			ser := plot.NewSerie(s.Name, s.Values...)
			ser.Color = s.Color
			ds.Series = append(ds.Series, ser)
		}
	}
	colors := c.Colors
	if c.File != nil && len(c.File.Colors) > 0 {
		colors = c.File.Colors
	}
	ds.Categories = categories(ds.Labels, colors)
	return ds, nil
}

func categories(labels []string, colors map[string]string) []plot.SeriesStyle {
	if len(colors) == 0 {
		return nil
	}
	list := make([]plot.SeriesStyle, len(labels))
	for i, str := range labels {
		list[i] = plot.SeriesStyle{
			Name:  str,
			Color: colors[str],
		}
	}
	return list
}

// Load reads the dataset of the file. Workbooks are recognized by their
// extension, other files are read as csv separated by delim.
func (f FileConfig) Load(ctx context.Context, delim string) (plot.Dataset, error) {
	sel, err := ParseSelector(f.Columns)
	if err != nil {
		return plot.Dataset{}, err
	}
	r, err := readFrom(ctx, f.Path)
	if err != nil {
		return plot.Dataset{}, fmt.Errorf("%w: %s", ErrSource, err)
	}
	defer r.Close()

	var ds plot.Dataset
	if isWorkbook(f.Path) {
		ds, err = ReadWorkbook(r, f.Sheet, f.Label, sel)
	} else {
		ds, err = ReadDataset(r, delim, f.Label, sel)
	}
	if err != nil {
		return ds, fmt.Errorf("%s: %w", f.Path, err)
	}
	return f.Limit.apply(ds), nil
}

func (lim Limit) apply(ds plot.Dataset) plot.Dataset {
	var (
		z   = len(ds.Labels)
		beg = lim.Offset
		end = z
	)
	if beg < 0 {
		beg = max(0, z+beg)
	}
	if beg > z {
		beg = z
	}
	if lim.Count > 0 && beg+lim.Count < z {
		end = beg + lim.Count
	}
	ds.Labels = ds.Labels[beg:end]
	for i := range ds.Series {
		ds.Series[i].Values = ds.Series[i].Values[beg:end]
	}
	return ds
}

type rowReader interface {
	Read() ([]string, error)
}

// ReadDataset reads a csv document whose first row is a header. The label
// column gives the categories and every value given by sel becomes a
// serie named after its header.
func ReadDataset(r io.Reader, delim string, label int, sel Selector) (plot.Dataset, error) {
	rs := csv.NewReader(r)
	rs.Comma = getDelimiter(delim)
	rs.TrimLeadingSpace = true
	return readDataset(rs, label, sel)
}

func readDataset(rs rowReader, label int, sel Selector) (plot.Dataset, error) {
	var ds plot.Dataset

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ds, fmt.Errorf("%w: missing header", ErrSource)
		}
		return ds, fmt.Errorf("%w: %s", ErrSource, err)
	}
	if label < 0 || label >= len(header) {
		return ds, fmt.Errorf("%w: label column %d", ErrIndex, label)
	}
	for _, name := range sel.Names(header) {
		ds.Series = append(ds.Series, plot.NewSerie(name))
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ds, fmt.Errorf("%w: %s", ErrSource, err)
		}
		if label >= len(row) {
			return ds, fmt.Errorf("%w: label column %d", ErrIndex, label)
		}
		values, err := sel.Select(row)
		if err != nil {
			return ds, fmt.Errorf("%s: %w", slices.Fst(row), err)
		}
		ds.Labels = append(ds.Labels, row[label])
		for i := range ds.Series {
			ds.Series[i].Values = append(ds.Series[i].Values, values[i])
		}
	}
	return ds, nil
}

func getDelimiter(delim string) rune {
	if delim == `\t` || delim == "tab" {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(delim)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	if !isRemote(location) {
		return os.Open(strings.TrimPrefix(location, "file://"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%s: unexpected status %s", location, res.Status)
	}
	return res.Body, nil
}
