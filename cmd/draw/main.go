package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/midbel/plot"
	"github.com/midbel/plot/dash"
	"github.com/midbel/plot/internal/logging"
	"github.com/midbel/plot/render"
	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var defaultPad = plot.Padding{
	Top:    40,
	Right:  40,
	Bottom: 60,
	Left:   80,
}

type options struct {
	title     string
	label     int
	columns   string
	delimiter string
	sheet     string
	width     float64
	height    float64
	ticks     int
	locale    string
	digits    int
	donut     float64
	palette   string
	point     string
	legend    bool
	values    bool
	output    string

	logLevel  string
	logFormat string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "draw [pie|bar|line] file.csv",
		Short: "Draw a chart from a csv file as SVG",
		Long: `draw reads the categories and the series of a chart from a csv file
(or a sheet of a xlsx workbook) whose first row is a header and writes the
chart as a SVG document.

Columns are given by index: a comma separated list of single columns (1),
ranges (1:3) or sums (1+2).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.title, "title", "", "chart title")
	flags.IntVar(&opts.label, "labels", 0, "index of the column with the categories")
	flags.StringVar(&opts.columns, "columns", "1", "columns of the series")
	flags.StringVar(&opts.delimiter, "delimiter", dash.DefaultDelim, "field delimiter")
	flags.StringVar(&opts.sheet, "sheet", "", "sheet of a workbook (default: first sheet)")
	flags.Float64Var(&opts.width, "width", defaultWidth, "chart width")
	flags.Float64Var(&opts.height, "height", defaultHeight, "chart height")
	flags.IntVar(&opts.ticks, "ticks", plot.DefaultTicks, "ticks on the value axis")
	flags.StringVar(&opts.locale, "locale", dash.DefaultLocale, "locale of the labels")
	flags.IntVar(&opts.digits, "digits", plot.AutoDigits, "fraction digits of the labels")
	flags.Float64Var(&opts.donut, "donut", 0, "inner radius ratio of a pie chart")
	flags.StringVar(&opts.palette, "palette", dash.PaletteTableau, "color palette (tableau10, category10)")
	flags.StringVar(&opts.point, "point", "", "marker of line points (circle, square, diamond)")
	flags.BoolVar(&opts.legend, "legend", false, "draw the legend")
	flags.BoolVar(&opts.values, "values", false, "draw the values")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	return cmd
}

func run(ctx context.Context, opts options, kind, file string) error {
	logger := logging.New(logging.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Output: os.Stderr,
	})
	k, err := plot.ParseKind(kind)
	if err != nil {
		return err
	}
	src := dash.FileConfig{
		Path:    file,
		Sheet:   opts.sheet,
		Label:   opts.label,
		Columns: opts.columns,
	}
	ds, err := src.Load(ctx, opts.delimiter)
	if err != nil {
		return err
	}

	nf := plot.LocaleFormat(opts.locale)
	nf.Digits = opts.digits
	ch := plot.Chart{
		Width:     opts.width,
		Height:    opts.height,
		Padding:   defaultPad,
		Ticks:     opts.ticks,
		Formatter: nf,
	}
	if k == plot.KindPie {
		ch.InnerRatio = opts.donut
		if strings.ToLower(kind) == "donut" && ch.InnerRatio == 0 {
			ch.InnerRatio = dash.DefaultDonut
		}
	}
	cv := render.FromChart(ch)
	cv.Title = opts.title
	cv.WithLegend = opts.legend
	cv.WithValues = opts.values
	cv.Palette = render.PaletteByName(opts.palette)
	cv.Marker = render.MarkerByName(opts.point)

	err = writeTo(opts.output, func(w io.Writer) error {
		return render.Draw(w, k, ch, cv, ds)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(file), err)
	}
	logger.Debug().
		Str("file", file).
		Str("type", k.String()).
		Int("categories", len(ds.Labels)).
		Int("series", len(ds.Series)).
		Msg("chart drawn")
	return nil
}

// writeTo calls draw with the output file or stdout when file is empty. The
// output file is removed when draw fails.
func writeTo(file string, draw func(io.Writer) error) error {
	if file == "" {
		return draw(os.Stdout)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := draw(w); err != nil {
		w.Close()
		os.Remove(file)
		return err
	}
	return w.Close()
}
