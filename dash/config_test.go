package dash

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sample = `
title: fleet
width: 640
locale: de
style:
  palette: category10
charts:
  - title: Vehicle status
    type: donut
    labels: [Active, Maintenance, Available, Out of Service]
    series:
      - name: vehicles
        values: [142, 23, 67, 15]
    colors:
      Active: green
      Out of Service: red
  - title: Contracts
    type: bar
    height: 300
    digits: 0
    labels: [Q1, Q2, Q3, Q4]
    series:
      - name: contracts
        values: [45, 52, 61, 48]
    style:
      values: true
`

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Width != 640 || cfg.Height != DefaultHeight {
		t.Errorf("dimension mismatched! got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Locale != "de" || cfg.Delimiter != DefaultDelim {
		t.Errorf("defaults not merged: %+v", cfg)
	}
	if cfg.Style.Palette != PaletteCategory || cfg.Style.Legend == nil || !*cfg.Style.Legend {
		t.Errorf("style not merged with the defaults: %+v", cfg.Style)
	}
	if len(cfg.Charts) != 2 {
		t.Fatalf("charts mismatched! want 2, got %d", len(cfg.Charts))
	}
	pie := cfg.Charts[0]
	if !pie.isDonut() || pie.output(0) != "vehicle-status.svg" {
		t.Errorf("unexpected chart: %s (%s)", pie.Type, pie.output(0))
	}
	ds, err := pie.dataset(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ds.Categories) != 4 || ds.Categories[3].Color != "red" || ds.Categories[1].Color != "" {
		t.Errorf("colors not attached to their categories: %+v", ds.Categories)
	}

	bar := cfg.Charts[1]
	ch, err := bar.chart(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ch.Width != 640 || ch.Height != 300 || ch.Ticks != 5 {
		t.Errorf("chart not merged with the dashboard: %+v", ch)
	}
	if got := ch.Formatter.Format(1234.7); got != "1.235" {
		t.Errorf("formatter should use the dashboard locale, got %q", got)
	}
	st := bar.Style.merge(cfg.Style)
	if st.Values == nil || !*st.Values || st.Palette != PaletteCategory {
		t.Errorf("chart style not merged: %+v", st)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Err   error
	}{
		{
			Name: "kind",
			Input: `
charts:
  - type: radar
    labels: [a]
    series: [{values: [1]}]
`,
			Err: ErrKind,
		},
		{
			Name: "no-data",
			Input: `
charts:
  - type: pie
`,
			Err: ErrSource,
		},
		{
			Name: "both",
			Input: `
charts:
  - type: pie
    file: {path: data.csv, columns: "1"}
    series: [{values: [1]}]
`,
			Err: ErrSource,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.Input))
			if !errors.Is(err, tt.Err) {
				t.Errorf("expected %v, got %v", tt.Err, err)
			}
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	if _, err := Load(strings.NewReader("widht: 100\n")); err == nil {
		t.Errorf("unknown field should be rejected")
	}
}

func TestLoadDuplicateOutput(t *testing.T) {
	input := `
charts:
  - title: sales
    labels: [a]
    series: [{values: [1]}]
  - title: Sales
    labels: [a]
    series: [{values: [2]}]
`
	if _, err := Load(strings.NewReader(input)); err == nil {
		t.Errorf("charts writing to the same file should be rejected")
	}
}
