// Package freq provides the distribution backends behind a conditional
// frequency table: an eager in-memory distribution, an adapter over opaque
// frequency-count objects, and a lazily scanned source. All of them satisfy
// the ports.Table read contract, so consumers never learn which one they
// hold.
package freq

import "freqtab/ports"

// Dist is an eager outcome→count distribution for one condition. Counts are
// never negative; unseen outcomes count as zero. Enumeration follows first-
// observation (insertion) order.
type Dist struct {
	counts map[string]int
	order  []string
	total  int
}

// NewDist returns an empty distribution.
func NewDist() *Dist {
	return &Dist{counts: make(map[string]int)}
}

// FromSamples counts the given observations, applying transform to each one
// first. A nil transform counts observations as-is; any case folding must be
// done by the transform or counts will diverge from case-normalized
// reference results.
func FromSamples(samples []string, transform func(string) string) *Dist {
	d := NewDist()
	for _, s := range samples {
		if transform != nil {
			s = transform(s)
		}
		d.Inc(s)
	}
	return d
}

// Inc adds one observation of sample.
func (d *Dist) Inc(sample string) {
	d.Add(sample, 1)
}

// Add adds n observations of sample. Negative n is ignored.
func (d *Dist) Add(sample string, n int) {
	if n <= 0 {
		return
	}
	if _, seen := d.counts[sample]; !seen {
		d.order = append(d.order, sample)
	}
	d.counts[sample] += n
	d.total += n
}

// Count returns the frequency of sample, 0 if never observed.
func (d *Dist) Count(sample string) int {
	return d.counts[sample]
}

// Total returns the number of observations counted so far.
func (d *Dist) Total() int {
	return d.total
}

// Distinct returns the number of distinct samples observed.
func (d *Dist) Distinct() int {
	return len(d.order)
}

// Samples returns the observed samples in insertion order.
func (d *Dist) Samples() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Max returns the most frequent sample and its count. Ties resolve to the
// earliest-observed sample. ok is false for an empty distribution.
func (d *Dist) Max() (sample string, n int, ok bool) {
	for _, s := range d.order {
		if !ok || d.counts[s] > n {
			sample, n, ok = s, d.counts[s], true
		}
	}
	return sample, n, ok
}

// Merge folds other's counts into d. Counting is commutative, so merge
// order never changes final counts, though it may change insertion order.
func (d *Dist) Merge(other *Dist) {
	if other == nil {
		return
	}
	other.Each(func(sample string, v any) bool {
		d.Add(sample, v.(int))
		return true
	})
}

// Get implements ports.Table. A distribution tracks every key: unknown
// samples report a zero count rather than absence.
func (d *Dist) Get(key string) (any, bool) {
	return d.counts[key], true
}

// Each implements ports.Table, enumerating in insertion order.
func (d *Dist) Each(fn func(key string, value any) bool) {
	for _, s := range d.order {
		if !fn(s, d.counts[s]) {
			return
		}
	}
}

var _ ports.Table = (*Dist)(nil)
var _ ports.Counter = counterView{}

// AsCounter exposes d through the opaque frequency-count contract.
func (d *Dist) AsCounter() ports.Counter {
	return counterView{d}
}

type counterView struct{ d *Dist }

func (v counterView) Count(sample string) int { return v.d.Count(sample) }

func (v counterView) EachCount(fn func(sample string, n int) bool) {
	v.d.Each(func(k string, val any) bool { return fn(k, val.(int)) })
}
