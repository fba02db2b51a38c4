package freq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeUniformDistribution(t *testing.T) {
	d := NewDist()
	d.Add("heads", 2)
	d.Add("tails", 2)

	s, err := Summarize(d)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Distinct)
	assert.Equal(t, 2, s.MaxCount)
	assert.InDelta(t, 2.0, s.MeanCount, 1e-9)
	assert.InDelta(t, 2.0, s.MedianCount, 1e-9)
	assert.InDelta(t, 0.0, s.StdDevCount, 1e-9)
	assert.InDelta(t, math.Ln2, s.Entropy, 1e-9)
}

func TestSummarizeSkewedDistribution(t *testing.T) {
	d := NewDist()
	d.Add("the", 9)
	d.Add("cat", 1)

	s, err := Summarize(d)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Total)
	assert.Equal(t, "the", s.MaxSample)
	assert.Equal(t, 9, s.MaxCount)
	want := -(0.9*math.Log(0.9) + 0.1*math.Log(0.1))
	assert.InDelta(t, want, s.Entropy, 1e-9)
}

func TestSummarizeEmptyDistribution(t *testing.T) {
	s, err := Summarize(NewDist())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Distinct)
}

func TestSummarizeLoadsLazyBackends(t *testing.T) {
	probe := &probeOpener{text: "a a b"}
	src := NewLazySource("doc", probe.open, nil)

	s, err := Summarize(src)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Distinct)
	assert.Equal(t, "a", s.MaxSample)
}

func TestSummarizeSurfacesLoadFailure(t *testing.T) {
	probe := &probeOpener{fail: assert.AnError}
	src := NewLazySource("doc", probe.open, nil)

	_, err := Summarize(src)
	require.Error(t, err)
}
