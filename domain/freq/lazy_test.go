package freq

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freqtab/domain/core"
)

// probeOpener counts how many times the backing resource is opened.
type probeOpener struct {
	text  string
	fail  error
	opens int
}

func (p *probeOpener) open() (io.ReadCloser, error) {
	p.opens++
	if p.fail != nil {
		return nil, p.fail
	}
	return io.NopCloser(strings.NewReader(p.text)), nil
}

func TestLazySourceCountsOnFirstAccess(t *testing.T) {
	probe := &probeOpener{text: "to be or not to be"}
	src := NewLazySource("hamlet", probe.open, nil)

	assert.Equal(t, 0, probe.opens, "construction must not touch the resource")

	v, ok := src.Get("to")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, probe.opens)
}

func TestLazySourceIdempotentReads(t *testing.T) {
	probe := &probeOpener{text: "a b a"}
	src := NewLazySource("doc", probe.open, nil)

	first, _ := src.Get("a")
	for i := 0; i < 5; i++ {
		again, _ := src.Get("a")
		assert.Equal(t, first, again)
	}
	src.Each(func(string, any) bool { return true })
	require.NoError(t, src.Load())

	assert.Equal(t, 1, probe.opens, "resource must be scanned exactly once")
}

func TestLazySourceTransform(t *testing.T) {
	probe := &probeOpener{text: "Could could COULD"}
	src := NewLazySource("modals", probe.open, strings.ToLower)

	v, _ := src.Get("could")
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, src.Total())
}

func TestLazySourceUnavailable(t *testing.T) {
	probe := &probeOpener{fail: errors.New("permission denied")}
	src := NewLazySource("locked", probe.open, nil)

	err := src.Load()
	require.Error(t, err)
	assert.True(t, core.IsSourceUnavailable(err))

	// the failure is cached, not retried
	require.Error(t, src.Load())
	assert.Equal(t, 1, probe.opens)

	v, ok := src.Get("anything")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, src.Total())
}

func TestLazySourceEnumeration(t *testing.T) {
	probe := &probeOpener{text: "x y x z"}
	src := NewLazySource("doc", probe.open, nil)

	counts := map[string]int{}
	src.Each(func(key string, value any) bool {
		counts[key] = value.(int)
		return true
	})
	assert.Equal(t, map[string]int{"x": 2, "y": 1, "z": 1}, counts)
}
