package plot

import (
	"fmt"
	"strings"
)

// SeriesStyle is pass-through metadata attached to generated descriptors.
// The engine never interprets it.
type SeriesStyle struct {
	Name  string
	Color string
}

// Kind is the closed set of chart types the engine produces geometry for.
type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindPie
)

func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(str) {
	case "bar", "":
		return KindBar, nil
	case "line":
		return KindLine, nil
	case "pie", "donut":
		return KindPie, nil
	default:
		return 0, fmt.Errorf("%s: unknown chart kind", str)
	}
}

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPie:
		return "pie"
	default:
		return "unknown"
	}
}
