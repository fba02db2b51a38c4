package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freqtab/domain/cfd"
	"freqtab/domain/core"
	"freqtab/internal/tabulate"
)

func yearsTable(t *testing.T) *cfd.CFD {
	t.Helper()
	// insertion order deliberately differs from string order
	c := cfd.FromPairs([]cfd.Pair{
		{Condition: "1793", Sample: "liberty"},
		{Condition: "1793", Sample: "liberty"},
		{Condition: "1789", Sample: "liberty"},
		{Condition: "1789", Sample: "rights"},
	}, cfd.Options{})
	return c
}

func TestExportHeaderShape(t *testing.T) {
	g, err := Export(yearsTable(t), Spec{Selection: tabulate.Selection{Samples: []string{"liberty", "rights"}}})
	require.NoError(t, err)

	assert.Equal(t, []string{"index", "condition", "liberty", "rights"}, g.Header)
	assert.Equal(t, []string{"liberty", "rights"}, g.Samples())
	require.Len(t, g.Rows, 2)
	assert.Equal(t, []string{"0", "1793", "2", "0"}, g.Rows[0])
	assert.Equal(t, []string{"1", "1789", "1", "1"}, g.Rows[1])
}

func TestExportOrderBy(t *testing.T) {
	g, err := Export(yearsTable(t), Spec{
		Selection: tabulate.Selection{Samples: []string{"liberty"}},
		OrderBy:   strings.Compare,
	})
	require.NoError(t, err)

	require.Len(t, g.Rows, 2)
	assert.Equal(t, "1789", g.Rows[0][1], "ascending order regardless of internal enumeration")
	assert.Equal(t, "1793", g.Rows[1][1])
	assert.Equal(t, "0", g.Rows[0][0], "index reflects emission order")
}

func TestExportCumulative(t *testing.T) {
	g, err := Export(yearsTable(t), Spec{
		Selection: tabulate.Selection{
			Samples:    []string{"liberty", "rights"},
			Cumulative: true,
		},
		OrderBy: strings.Compare,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1789", "1", "2"}, g.Rows[0])
	assert.Equal(t, []string{"1", "1793", "2", "2"}, g.Rows[1])
}

func TestExportDoesNotReorderCaller(t *testing.T) {
	conds := []string{"1793", "1789"}
	_, err := Export(yearsTable(t), Spec{
		Selection: tabulate.Selection{Conditions: conds},
		OrderBy:   strings.Compare,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1793", "1789"}, conds)
}

func TestExportMalformedSelection(t *testing.T) {
	_, err := Export(yearsTable(t), Spec{Selection: tabulate.Selection{Samples: []string{" "}}})
	require.Error(t, err)
	assert.True(t, core.IsMalformedSelection(err))
}
