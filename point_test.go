package plot

import (
	"testing"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		Path Path
		Want string
	}{
		{
			Want: "",
		},
		{
			Path: Path{
				{Op: OpMove, To: NewPoint(0, 0)},
				{Op: OpLine, To: NewPoint(10, 0)},
				{Op: OpArc, To: NewPoint(0, 10), RX: 10, RY: 10, Large: true, Sweep: true},
				{Op: OpClose},
			},
			Want: "M 0 0 L 10 0 A 10 10 0 1 1 0 10 Z",
		},
		{
			Path: Path{
				{Op: OpMove, To: NewPoint(1.001, -0.0001)},
				{Op: OpLine, To: NewPoint(12.5, 3.14159)},
			},
			Want: "M 1 0 L 12.50 3.14",
		},
	}
	for _, tt := range tests {
		if got := tt.Path.String(); got != tt.Want {
			t.Errorf("want %q, got %q", tt.Want, got)
		}
	}
}

func TestPathBuilder(t *testing.T) {
	var pat Path
	pat.MoveTo(NewPoint(0, 0))
	pat.LineTo(NewPoint(5, 5).Adjust(1, -1))
	pat.ArcTo(NewPoint(2, 2), 3, false, true)
	pat.Close()

	if len(pat) != 4 {
		t.Fatalf("segments mismatched! want 4, got %d", len(pat))
	}
	if want := "M 0 0 L 6 4 A 3 3 0 0 1 2 2 Z"; pat.String() != want {
		t.Errorf("want %q, got %q", want, pat.String())
	}
}
