package freq

import "freqtab/ports"

// CounterDist adapts an opaque frequency-count object (ports.Counter) to
// the ports.Table read contract. The wrapped counter keeps ownership of
// its state; the adapter never mutates it.
type CounterDist struct {
	c ports.Counter
}

// WrapCounter wraps an existing frequency-count object as a distribution
// backend. The counter's own enumeration order is preserved.
func WrapCounter(c ports.Counter) *CounterDist {
	return &CounterDist{c: c}
}

// Get implements ports.Table; unknown samples report zero.
func (w *CounterDist) Get(key string) (any, bool) {
	return w.c.Count(key), true
}

// Each implements ports.Table in the counter's enumeration order.
func (w *CounterDist) Each(fn func(key string, value any) bool) {
	w.c.EachCount(func(sample string, n int) bool {
		return fn(sample, n)
	})
}

// Total sums every count in the wrapped counter.
func (w *CounterDist) Total() int {
	total := 0
	w.c.EachCount(func(_ string, n int) bool {
		total += n
		return true
	})
	return total
}

var _ ports.Table = (*CounterDist)(nil)
