// Package plot turns a conditional frequency table into a row-oriented
// export and drives an external plotting sink with it. The sink only ever
// sees a rectangular grid with a header row; everything backend-specific
// stays behind ports.PlotSink.
package plot

import (
	"sort"
	"strconv"

	"freqtab/domain/cfd"
	"freqtab/internal/tabulate"
)

// Spec selects and orders the exported rows. The embedded Selection keeps
// the same cell rules as tabulation; OrderBy is an optional total order
// over condition labels (negative when a sorts before b), applied before
// emission. Nil OrderBy keeps the table's natural enumeration order.
type Spec struct {
	tabulate.Selection
	OrderBy func(a, b string) int
}

// Grid is the export artifact: a header row followed by one row per
// condition. Header is ("index", "condition", samples…); each data row
// carries the row index, the condition label, and its counts.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Samples returns the sample labels covered by the grid, in column order.
func (g Grid) Samples() []string {
	if len(g.Header) < 2 {
		return nil
	}
	return g.Header[2:]
}

// Export materializes the selected slice of c as a Grid. Cell values
// follow the tabulation rules (0 for unobserved cells, running sums in
// cumulative mode); a malformed selection or broken lazy backend fails
// the export before any row is produced.
func Export(c *cfd.CFD, spec Spec) (Grid, error) {
	var g Grid
	if err := spec.Validate(); err != nil {
		return g, err
	}

	conditions := spec.Conditions
	if conditions == nil {
		conditions = c.Conditions()
	} else {
		conditions = append([]string(nil), conditions...)
	}
	if spec.OrderBy != nil {
		sort.SliceStable(conditions, func(i, j int) bool {
			return spec.OrderBy(conditions[i], conditions[j]) < 0
		})
	}

	tables, err := tabulate.ResolveTables(c, conditions)
	if err != nil {
		return g, err
	}
	samples := spec.Samples
	if samples == nil {
		samples = tabulate.DefaultSampleOrder(tables)
	}

	g.Header = append([]string{"index", "condition"}, samples...)
	g.Rows = make([][]string, len(conditions))
	for i, cond := range conditions {
		row := make([]string, 0, len(samples)+2)
		row = append(row, strconv.Itoa(i), cond)
		running := 0
		for _, s := range samples {
			n := tabulate.CellCount(tables[i], s)
			if spec.Cumulative {
				running += n
				n = running
			}
			row = append(row, strconv.Itoa(n))
		}
		g.Rows[i] = row
	}
	return g, nil
}
