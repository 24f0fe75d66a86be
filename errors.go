package plot

import (
	"fmt"
)

// LengthMismatchError reports a serie whose number of values differs from
// the number of labels of its dataset. Serie is -1 when the categories of
// the dataset outnumber its labels.
type LengthMismatchError struct {
	Serie int
	Want  int
	Got   int
}

func (e LengthMismatchError) Error() string {
	if e.Serie < 0 {
		return fmt.Sprintf("%d categories given for %d labels", e.Got, e.Want)
	}
	return fmt.Sprintf("serie %d: %d values given for %d labels", e.Serie, e.Got, e.Want)
}

// EmptyDatasetError reports a dataset without labels or without series.
type EmptyDatasetError struct{}

func (e EmptyDatasetError) Error() string {
	return "empty dataset"
}

// NonPositiveTotalError reports a pie serie that can not be split in sectors.
type NonPositiveTotalError struct {
	Total float64
}

func (e NonPositiveTotalError) Error() string {
	return fmt.Sprintf("serie total should be positive (got %g)", e.Total)
}

// InvalidValueError reports a NaN or infinite value.
type InvalidValueError struct {
	Serie int
	Index int
	Value float64
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("serie %d: invalid value %g at index %d", e.Serie, e.Value, e.Index)
}

// OverflowError reports a serie whose total or spread of values does not fit
// in a float64.
type OverflowError struct {
	Serie int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("serie %d: values overflow", e.Serie)
}
