// Package tabulate renders a conditional frequency table as an aligned
// text grid for terminal or log display.
package tabulate

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"freqtab/domain/cfd"
	"freqtab/domain/core"
	"freqtab/ports"
)

// Selection narrows a tabulation or export to chosen conditions and
// samples. Nil slices mean "everything, in the table's natural order".
type Selection struct {
	Conditions []string
	Samples    []string
	// Cumulative replaces each cell with the running sum of itself and
	// the cells to its left in the same row.
	Cumulative bool
}

// Validate rejects syntactically invalid selections before any output is
// produced.
func (sel Selection) Validate() error {
	for _, c := range sel.Conditions {
		if strings.TrimSpace(c) == "" {
			return core.NewMalformedSelection("blank condition label")
		}
	}
	for _, s := range sel.Samples {
		if strings.TrimSpace(s) == "" {
			return core.NewMalformedSelection("blank sample label")
		}
	}
	return nil
}

// Render writes c as an aligned grid: one row per selected condition, one
// column per selected sample, values right-aligned under a header row.
// Column widths are fixed once from the widest of header and values.
//
// When the selection names no samples, columns are every sample observed
// in the rendered rows, ordered by descending aggregate count with ties
// broken lexicographically. Conditions named in the selection but absent
// from the table render as all-zero rows, matching the cell rule that an
// unobserved (condition, sample) cell is 0.
func Render(w io.Writer, c *cfd.CFD, sel Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	conditions := sel.Conditions
	if conditions == nil {
		conditions = c.Conditions()
	}
	tables, err := ResolveTables(c, conditions)
	if err != nil {
		return err
	}
	samples := sel.Samples
	if samples == nil {
		samples = DefaultSampleOrder(tables)
	}

	cells := make([][]int, len(conditions))
	for i, t := range tables {
		row := make([]int, len(samples))
		for j, s := range samples {
			row[j] = CellCount(t, s)
		}
		if sel.Cumulative {
			for j := 1; j < len(row); j++ {
				row[j] += row[j-1]
			}
		}
		cells[i] = row
	}

	condWidth := 0
	for _, cond := range conditions {
		if len(cond) > condWidth {
			condWidth = len(cond)
		}
	}
	widths := make([]int, len(samples))
	for j, s := range samples {
		widths[j] = len(s)
		for i := range cells {
			if n := len(strconv.Itoa(cells[i][j])); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", condWidth))
	for j, s := range samples {
		fmt.Fprintf(&b, " %*s", widths[j], s)
	}
	b.WriteByte('\n')
	for i, cond := range conditions {
		fmt.Fprintf(&b, "%*s", condWidth, cond)
		for j := range samples {
			fmt.Fprintf(&b, " %*d", widths[j], cells[i][j])
		}
		b.WriteByte('\n')
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// ResolveTables maps each selected condition to its distribution, nil for
// conditions the table does not track. Lazy backends are materialized
// here so a broken resource fails the whole render before any output.
func ResolveTables(c *cfd.CFD, conditions []string) ([]ports.Table, error) {
	tables := make([]ports.Table, len(conditions))
	for i, cond := range conditions {
		t, err := c.Table(cond)
		if err != nil {
			if core.IsConditionNotFound(err) {
				continue
			}
			return nil, err
		}
		if l, ok := t.(ports.Loader); ok {
			if err := l.Load(); err != nil {
				return nil, err
			}
		}
		tables[i] = t
	}
	return tables, nil
}

// CellCount reads one cell through the table contract: nil tables (an
// untracked condition row) and unseen samples both count as 0.
func CellCount(t ports.Table, sample string) int {
	if t == nil {
		return 0
	}
	v, ok := t.Get(sample)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// DefaultSampleOrder collects every sample seen in the rendered rows and
// orders them by descending aggregate count, ties ascending by label.
func DefaultSampleOrder(tables []ports.Table) []string {
	totals := make(map[string]int)
	var order []string
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(key string, value any) bool {
			n, _ := value.(int)
			if _, seen := totals[key]; !seen {
				order = append(order, key)
			}
			totals[key] += n
			return true
		})
	}
	sort.Slice(order, func(i, j int) bool {
		if totals[order[i]] != totals[order[j]] {
			return totals[order[i]] > totals[order[j]]
		}
		return order[i] < order[j]
	})
	return order
}
