package dash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/plot"
	"go.yaml.in/yaml/v4"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultDelim  = ","
	DefaultLocale = "en"
)

var ErrKind = errors.New("unsupported chart type")

// Config is a dashboard: a list of charts sharing default dimensions,
// locale and style.
type Config struct {
	Title     string        `yaml:"title"`
	Dir       string        `yaml:"dir"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Padding   Padding       `yaml:"padding"`
	Ticks     int           `yaml:"ticks"`
	Locale    string        `yaml:"locale"`
	Delimiter string        `yaml:"delimiter"`
	Style     Style         `yaml:"style"`
	Charts    []ChartConfig `yaml:"charts"`
}

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (p Padding) isZero() bool {
	return p == Padding{}
}

type ChartConfig struct {
	Title   string  `yaml:"title"`
	Type    string  `yaml:"type"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding Padding `yaml:"padding"`
	Ticks   int     `yaml:"ticks"`
	Locale  string  `yaml:"locale"`
	Digits  *int    `yaml:"digits"`
	Prefix  string  `yaml:"prefix"`
	Suffix  string  `yaml:"suffix"`
	Output  string  `yaml:"output"`

	Labels []string          `yaml:"labels"`
	Series []SerieConfig     `yaml:"series"`
	File   *FileConfig       `yaml:"file"`
	Colors map[string]string `yaml:"colors"`

	Style Style `yaml:"style"`
}

type SerieConfig struct {
	Name   string    `yaml:"name"`
	Color  string    `yaml:"color"`
	Values []float64 `yaml:"values"`
}

type FileConfig struct {
	Path      string            `yaml:"path"`
	Sheet     string            `yaml:"sheet"`
	Delimiter string            `yaml:"delimiter"`
	Label     int               `yaml:"label"`
	Columns   string            `yaml:"columns"`
	Colors    map[string]string `yaml:"colors"`
	Limit     `yaml:",inline"`
}

// Limit restricts the rows read from a file. A negative offset counts from
// the end of the file.
type Limit struct {
	Offset int `yaml:"offset"`
	Count  int `yaml:"count"`
}

func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Padding: Padding{
			Top:    20,
			Right:  20,
			Bottom: 40,
			Left:   60,
		},
		Ticks:     plot.DefaultTicks,
		Locale:    DefaultLocale,
		Delimiter: DefaultDelim,
		Style:     GlobalStyle(),
	}
}

// Load decodes a dashboard from r over the default configuration.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode dashboard: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile loads the dashboard stored in file. Relative paths of the data
// files and of the output directory are resolved from its directory.
func LoadFile(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	cfg, err := Load(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	base := filepath.Dir(file)
	if !filepath.IsAbs(cfg.Dir) {
		cfg.Dir = filepath.Join(base, cfg.Dir)
	}
	for i := range cfg.Charts {
		f := cfg.Charts[i].File
		if f == nil || isRemote(f.Path) || filepath.IsAbs(f.Path) {
			continue
		}
		f.Path = filepath.Join(base, f.Path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimension %gx%g", c.Width, c.Height)
	}
	seen := make(map[string]int)
	for i, ch := range c.Charts {
		if _, err := plot.ParseKind(ch.Type); err != nil {
			return fmt.Errorf("chart %d: %w: %s", i, ErrKind, ch.Type)
		}
		if ch.File != nil && len(ch.Series) > 0 {
			return fmt.Errorf("chart %d: %w: file and series both given", i, ErrSource)
		}
		if ch.File == nil && len(ch.Series) == 0 {
			return fmt.Errorf("chart %d: %w: no data", i, ErrSource)
		}
		out := ch.output(i)
		if j, ok := seen[out]; ok {
			return fmt.Errorf("chart %d: output %s already used by chart %d", i, out, j)
		}
		seen[out] = i
	}
	return nil
}

func (c ChartConfig) kind() plot.Kind {
	k, _ := plot.ParseKind(c.Type)
	return k
}

func (c ChartConfig) isDonut() bool {
	return strings.ToLower(c.Type) == "donut"
}

func (c ChartConfig) output(i int) string {
	if c.Output != "" {
		return c.Output
	}
	name := strings.ToLower(strings.TrimSpace(c.Title))
	if name == "" {
		return fmt.Sprintf("chart-%d.svg", i)
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return name + ".svg"
}

// chart returns the engine configuration of the chart merged with the
// defaults of the dashboard.
func (c ChartConfig) chart(cfg Config) (plot.Chart, error) {
	ch := plot.Chart{
		Width:  c.Width,
		Height: c.Height,
		Ticks:  c.Ticks,
	}
	if ch.Width <= 0 {
		ch.Width = cfg.Width
	}
	if ch.Height <= 0 {
		ch.Height = cfg.Height
	}
	if ch.Ticks <= 0 {
		ch.Ticks = cfg.Ticks
	}
	pad := c.Padding
	if pad.isZero() {
		pad = cfg.Padding
	}
	ch.Padding = plot.Padding{
		Top:    pad.Top,
		Right:  pad.Right,
		Bottom: pad.Bottom,
		Left:   pad.Left,
	}
	if ch.DrawingWidth() <= 0 || ch.DrawingHeight() <= 0 {
		return ch, fmt.Errorf("padding larger than chart %gx%g", ch.Width, ch.Height)
	}
	locale := c.Locale
	if locale == "" {
		locale = cfg.Locale
	}
	nf := plot.LocaleFormat(locale)
	if c.Digits != nil {
		nf.Digits = *c.Digits
	}
	nf.Prefix = c.Prefix
	nf.Suffix = c.Suffix
	ch.Formatter = nf
	return ch, nil
}
