package dash

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/midbel/plot"
	"github.com/midbel/slices"
	"github.com/xuri/excelize/v2"
)

func isWorkbook(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

// ReadWorkbook reads the rows of a sheet of a workbook the same way as
// ReadDataset. An empty sheet name selects the first sheet.
func ReadWorkbook(r io.Reader, sheet string, label int, sel Selector) (plot.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return plot.Dataset{}, fmt.Errorf("%w: %s", ErrSource, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return plot.Dataset{}, fmt.Errorf("%w: %s: %s", ErrSource, sheet, err)
	}
	return readDataset(&sheetReader{rows: rows}, label, sel)
}

// sheetReader gives the rows of a sheet one at a time. Trailing empty
// cells are dropped by excelize so rows are padded to the header width.
type sheetReader struct {
	rows  [][]string
	width int
}

func (r *sheetReader) Read() ([]string, error) {
	for len(r.rows) > 0 {
		row := slices.Fst(r.rows)
		r.rows = slices.Rest(r.rows)
		if len(row) == 0 {
			continue
		}
		if r.width == 0 {
			r.width = len(row)
		}
		for len(row) < r.width {
			row = append(row, "")
		}
		return row, nil
	}
	return nil, io.EOF
}
