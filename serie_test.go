package plot

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-6

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNormalize(t *testing.T) {
	ds := Dataset{
		Labels: []string{"Q1", "Q2", "Q3"},
		Series: []Serie{
			NewSerie("contracts", 10, 20, 30),
		},
	}
	cn, err := Normalize(ds, KindBar)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cn.Len() != 3 {
		t.Fatalf("labels mismatched! want 3, got %d", cn.Len())
	}
	cn.Labels[0] = "changed"
	cn.Series[0].Values[0] = 100
	if ds.Labels[0] != "Q1" || ds.Series[0].Values[0] != 10 {
		t.Errorf("canonical dataset shares memory with its input")
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Kind  Kind
		Data  Dataset
		Check func(error) bool
	}{
		{
			Name: "length",
			Kind: KindBar,
			Data: Dataset{
				Labels: []string{"a", "b"},
				Series: []Serie{NewSerie("", 1, 2), NewSerie("", 1)},
			},
			Check: func(err error) bool {
				var e LengthMismatchError
				return errors.As(err, &e) && e.Serie == 1 && e.Want == 2 && e.Got == 1
			},
		},
		{
			Name: "no-labels",
			Kind: KindBar,
			Data: Dataset{},
			Check: func(err error) bool {
				var e EmptyDatasetError
				return errors.As(err, &e)
			},
		},
		{
			Name: "no-series",
			Kind: KindLine,
			Data: Dataset{Labels: []string{"a"}},
			Check: func(err error) bool {
				var e EmptyDatasetError
				return errors.As(err, &e)
			},
		},
		{
			Name: "nan",
			Kind: KindLine,
			Data: Dataset{
				Labels: []string{"a", "b"},
				Series: []Serie{NewSerie("", 1, math.NaN())},
			},
			Check: func(err error) bool {
				var e InvalidValueError
				return errors.As(err, &e) && e.Index == 1
			},
		},
		{
			Name: "categories",
			Kind: KindPie,
			Data: Dataset{
				Labels:     []string{"a"},
				Series:     []Serie{NewSerie("", 1)},
				Categories: []SeriesStyle{{Color: "red"}, {Color: "blue"}},
			},
			Check: func(err error) bool {
				var e LengthMismatchError
				return errors.As(err, &e) && e.Serie == -1 && e.Want == 1 && e.Got == 2
			},
		},
		{
			Name: "overflow-total",
			Kind: KindPie,
			Data: Dataset{
				Labels: []string{"a", "b"},
				Series: []Serie{NewSerie("", 1e308, 1e308)},
			},
			Check: func(err error) bool {
				var e OverflowError
				return errors.As(err, &e)
			},
		},
		{
			Name: "overflow-spread",
			Kind: KindBar,
			Data: Dataset{
				Labels: []string{"a", "b"},
				Series: []Serie{NewSerie("", 1, 2), NewSerie("", -1e308, 1e308)},
			},
			Check: func(err error) bool {
				var e OverflowError
				return errors.As(err, &e) && e.Serie == 1
			},
		},
		{
			Name: "zero-total",
			Kind: KindPie,
			Data: Dataset{
				Labels: []string{"a", "b", "c"},
				Series: []Serie{NewSerie("", 0, 0, 0)},
			},
			Check: func(err error) bool {
				var e NonPositiveTotalError
				return errors.As(err, &e) && e.Total == 0
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Normalize(tt.Data, tt.Kind)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if !tt.Check(err) {
				t.Errorf("unexpected error: %s", err)
			}
		})
	}
}

func TestNormalizeZeroTotalBar(t *testing.T) {
	ds := Dataset{
		Labels: []string{"a", "b", "c"},
		Series: []Serie{NewSerie("", 0, 0, 0)},
	}
	if _, err := Normalize(ds, KindBar); err != nil {
		t.Errorf("zero values are valid for bars: %s", err)
	}
}

func TestNormalizeFewerCategories(t *testing.T) {
	ds := Dataset{
		Labels:     []string{"a", "b", "c"},
		Series:     []Serie{NewSerie("", 1, 2, 3)},
		Categories: []SeriesStyle{{Color: "red"}},
	}
	cn, err := Normalize(ds, KindPie)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(cn.Categories) != 3 || cn.Categories[0].Color != "red" || cn.Categories[2].Color != "" {
		t.Errorf("missing categories should be left empty: %+v", cn.Categories)
	}
}
