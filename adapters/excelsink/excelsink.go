// Package excelsink renders exported frequency grids into an xlsx
// workbook. It is one concrete plotting sink behind ports.PlotSink; the
// export pipeline never depends on it directly.
package excelsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"freqtab/ports"
)

// Sink writes each render call to one sheet of a workbook at Path.
type Sink struct {
	Path  string
	Sheet string
}

// NewSink returns a sink writing to the workbook at path, sheet "Sheet1".
func NewSink(path string) *Sink {
	return &Sink{Path: path, Sheet: "Sheet1"}
}

// Render implements ports.PlotSink: it reads the tab-separated artifact
// at dataPath and writes it as a worksheet, numeric cells typed as
// numbers so downstream charting works. The artifact is not retained.
func (s *Sink) Render(ctx context.Context, dataPath string, d ports.PlotDirectives) error {
	rows, err := readArtifact(dataPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("excel sink: artifact %s has no header row", dataPath)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := s.Sheet
	if d.Title != "" {
		sheet = d.Title
	}
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("excel sink: create sheet %q: %w", sheet, err)
		}
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel sink: row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, rowValues(row, i == 0)); err != nil {
			return fmt.Errorf("excel sink: write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("excel sink: save %s: %w", s.Path, err)
	}
	return nil
}

func readArtifact(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("excel sink: open artifact: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("excel sink: read artifact: %w", err)
	}
	return rows, nil
}

// rowValues keeps the header textual and converts data cells to numbers
// where they parse as such (counts and the index column).
func rowValues(row []string, header bool) *[]any {
	vals := make([]any, len(row))
	for i, cell := range row {
		if !header {
			if n, err := strconv.Atoi(cell); err == nil {
				vals[i] = n
				continue
			}
		}
		vals[i] = cell
	}
	return &vals
}
