package cfd

import (
	"fmt"
	"io"
	"sort"

	"freqtab/domain/freq"
	"freqtab/ports"
)

// SourceKind discriminates the raw-source shapes the builder accepts.
// Selection is always by this explicit tag, never by inspecting the
// payload fields.
type SourceKind int

const (
	// SourceObservations: condition → already-tokenized observations,
	// counted eagerly per condition.
	SourceObservations SourceKind = iota + 1
	// SourceDistributions: condition → pre-built distribution backend,
	// bound as-is.
	SourceDistributions
	// SourceResources: one named resource per condition, scanned lazily
	// on first access.
	SourceResources
)

// Resource names one lazily scanned input, typically a file holding the
// raw records of a single condition.
type Resource struct {
	Condition string
	Open      func() (io.ReadCloser, error)
}

// Source is the tagged union over the three raw-source shapes. Exactly
// the field matching Kind is consulted.
type Source struct {
	Kind          SourceKind
	Observations  map[string][]string
	Distributions map[string]ports.Table
	Resources     []Resource
}

// ObservationsSource wraps a condition→observations mapping.
func ObservationsSource(m map[string][]string) Source {
	return Source{Kind: SourceObservations, Observations: m}
}

// DistributionsSource wraps a condition→backend mapping.
func DistributionsSource(m map[string]ports.Table) Source {
	return Source{Kind: SourceDistributions, Distributions: m}
}

// ResourcesSource wraps a collection of per-condition lazy resources.
func ResourcesSource(rs []Resource) Source {
	return Source{Kind: SourceResources, Resources: rs}
}

// Options fixes the two points where otherwise-identical pipelines can
// legitimately disagree. Both default to identity; the builder itself
// never normalizes anything.
type Options struct {
	// KeyFold canonicalizes condition keys before they are compared,
	// e.g. lowercasing for case-insensitive condition identity, or
	// mapping per-document keys onto coarser per-topic conditions.
	KeyFold func(string) string
	// Transform is applied to every raw observation before counting.
	// Case folding of observations happens here or not at all.
	Transform func(string) string
}

func (o Options) foldKey(k string) string {
	if o.KeyFold == nil {
		return k
	}
	return o.KeyFold(k)
}

// Build constructs a CFD from src. Map-shaped sources enumerate their
// conditions in sorted key order so that repeated builds agree on the
// table's natural order; resource collections keep their given order.
//
// When KeyFold maps several raw keys onto one condition, observation
// sources merge their counts (counting is commutative, so merge order
// never changes totals). Pre-built distributions and lazy resources are
// opaque and cannot be merged; a fold collision among those is an error.
// A failed build never yields a partially populated condition.
func Build(src Source, opts Options) (*CFD, error) {
	switch src.Kind {
	case SourceObservations:
		return buildObservations(src.Observations, opts)
	case SourceDistributions:
		return buildDistributions(src.Distributions, opts)
	case SourceResources:
		return buildResources(src.Resources, opts)
	default:
		return nil, fmt.Errorf("build: unknown source kind %d", src.Kind)
	}
}

func buildObservations(m map[string][]string, opts Options) (*CFD, error) {
	if m == nil {
		return nil, fmt.Errorf("build: observations source is nil")
	}
	c := New()
	for _, raw := range sortedKeys(m) {
		cond := opts.foldKey(raw)
		var d *freq.Dist
		if t, ok := c.tables[cond]; ok {
			d = t.(*freq.Dist)
		} else {
			d = freq.NewDist()
			c.Set(cond, d)
		}
		for _, obs := range m[raw] {
			if opts.Transform != nil {
				obs = opts.Transform(obs)
			}
			d.Inc(obs)
		}
	}
	return c, nil
}

func buildDistributions(m map[string]ports.Table, opts Options) (*CFD, error) {
	if m == nil {
		return nil, fmt.Errorf("build: distributions source is nil")
	}
	c := New()
	for _, raw := range sortedKeys(m) {
		cond := opts.foldKey(raw)
		if _, ok := c.tables[cond]; ok {
			return nil, fmt.Errorf("build: condition %q bound twice after key fold", cond)
		}
		if m[raw] == nil {
			return nil, fmt.Errorf("build: condition %q has a nil distribution", cond)
		}
		c.Set(cond, m[raw])
	}
	return c, nil
}

func buildResources(rs []Resource, opts Options) (*CFD, error) {
	if len(rs) == 0 {
		return nil, fmt.Errorf("build: resource source is empty")
	}
	c := New()
	for _, r := range rs {
		if r.Condition == "" || r.Open == nil {
			return nil, fmt.Errorf("build: resource missing condition name or opener")
		}
		cond := opts.foldKey(r.Condition)
		if _, ok := c.tables[cond]; ok {
			return nil, fmt.Errorf("build: condition %q bound twice after key fold", cond)
		}
		c.Set(cond, freq.NewLazySource(r.Condition, r.Open, opts.Transform))
	}
	return c, nil
}

// Pair is one (condition, sample) observation event.
type Pair struct {
	Condition string
	Sample    string
}

// FromPairs counts a stream of (condition, sample) events, the way a
// tagged corpus walk produces them. Conditions enter the natural order as
// they are first seen in the stream.
func FromPairs(pairs []Pair, opts Options) *CFD {
	c := New()
	for _, p := range pairs {
		cond := opts.foldKey(p.Condition)
		var d *freq.Dist
		if t, ok := c.tables[cond]; ok {
			d = t.(*freq.Dist)
		} else {
			d = freq.NewDist()
			c.Set(cond, d)
		}
		s := p.Sample
		if opts.Transform != nil {
			s = opts.Transform(s)
		}
		d.Inc(s)
	}
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
