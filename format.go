package plot

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter turns a value into the text displayed next to the geometry.
type Formatter interface {
	Format(float64) string
}

type FormatFunc func(float64) string

func (f FormatFunc) Format(v float64) string {
	return f(v)
}

// AutoDigits lets NumberFormat print integers without fraction and other
// values with two fraction digits.
const AutoDigits = -1

// NumberFormat formats numbers with the grouping and decimal separators of
// Locale. Prefix and Suffix are added as is (currency symbol, percent
// sign, unit...).
type NumberFormat struct {
	Locale language.Tag
	Digits int
	Prefix string
	Suffix string
}

func DefaultFormat() NumberFormat {
	return NumberFormat{
		Locale: language.English,
		Digits: AutoDigits,
	}
}

// LocaleFormat returns the default format for the given BCP 47 tag. An
// invalid tag falls back to English.
func LocaleFormat(locale string) NumberFormat {
	f := DefaultFormat()
	if tag, err := language.Parse(locale); err == nil {
		f.Locale = tag
	}
	return f
}

func (f NumberFormat) Format(v float64) string {
	digits := f.Digits
	if digits < 0 {
		digits = 2
		if math.Trunc(v) == v {
			digits = 0
		}
	}
	var (
		p   = message.NewPrinter(f.Locale)
		str = p.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	)
	return f.Prefix + str + f.Suffix
}

// FormatValue formats v with the default format of the first locale given
// or in English.
func FormatValue(v float64, locale ...string) string {
	f := DefaultFormat()
	if len(locale) > 0 {
		f = LocaleFormat(locale[0])
	}
	return f.Format(v)
}

// Label is a text positioned along an axis or next to a shape.
type Label struct {
	Index    int
	Value    float64
	Position float64
	Text     string
}

// Labeler creates labels for the ticks of a scale. A nil Formatter uses
// DefaultFormat.
type Labeler struct {
	Formatter Formatter
}

func (b Labeler) format(v float64) string {
	if b.Formatter == nil {
		return DefaultFormat().Format(v)
	}
	return b.Formatter.Format(v)
}

// Tick returns the label of the tick at index. It reports false when the
// index is out of the ticks of the scale.
func (b Labeler) Tick(s Scale, index int) (Label, bool) {
	ticks := s.Ticks()
	if index < 0 || index >= len(ticks) {
		return Label{}, false
	}
	return b.label(index, ticks[index]), true
}

func (b Labeler) Ticks(s Scale) []Label {
	var list []Label
	for i, t := range s.Ticks() {
		list = append(list, b.label(i, t))
	}
	return list
}

func (b Labeler) label(index int, t Tick) Label {
	return Label{
		Index:    index,
		Value:    t.Value,
		Position: t.Position,
		Text:     b.format(t.Value),
	}
}

func FormatTick(s Scale, index int) (Label, bool) {
	var b Labeler
	return b.Tick(s, index)
}
