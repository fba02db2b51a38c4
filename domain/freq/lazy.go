package freq

import (
	"bufio"
	"io"

	"freqtab/domain/core"
	"freqtab/ports"
)

// LazySource is a distribution whose counts are computed from a named
// resource on first access and cached. The resource is scanned exactly
// once; a scan failure is cached too and reported as source-unavailable on
// every Load. Construction never touches the resource.
type LazySource struct {
	name      string
	open      func() (io.ReadCloser, error)
	transform func(string) string

	loaded bool
	dist   *Dist
	err    error
}

// NewLazySource returns a lazy distribution named name. open produces the
// backing resource; transform is applied to each whitespace-separated
// record before counting (nil counts records as-is).
func NewLazySource(name string, open func() (io.ReadCloser, error), transform func(string) string) *LazySource {
	return &LazySource{name: name, open: open, transform: transform}
}

// Name returns the resource name the source was created with.
func (l *LazySource) Name() string {
	return l.name
}

// Load implements ports.Loader: it materializes the count table on first
// call and reuses the cached result afterwards, successful or not.
func (l *LazySource) Load() error {
	if l.loaded {
		return l.err
	}
	l.loaded = true
	l.dist, l.err = l.scan()
	return l.err
}

func (l *LazySource) scan() (*Dist, error) {
	rc, err := l.open()
	if err != nil {
		return nil, core.NewSourceUnavailable(l.name, err)
	}
	defer rc.Close()

	d := NewDist()
	sc := bufio.NewScanner(rc)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		record := sc.Text()
		if l.transform != nil {
			record = l.transform(record)
		}
		d.Inc(record)
	}
	if err := sc.Err(); err != nil {
		return nil, core.NewSourceUnavailable(l.name, err)
	}
	return d, nil
}

// Get implements ports.Table. Unknown samples report zero; so does every
// sample of a source that failed to load — observe the failure through
// Load before trusting direct lookups.
func (l *LazySource) Get(key string) (any, bool) {
	if l.Load() != nil {
		return 0, true
	}
	return l.dist.Get(key)
}

// Each implements ports.Table; a failed source enumerates nothing.
func (l *LazySource) Each(fn func(key string, value any) bool) {
	if l.Load() != nil {
		return
	}
	l.dist.Each(fn)
}

// Total returns the observation count of the materialized table, 0 when
// the source failed to load.
func (l *LazySource) Total() int {
	if l.Load() != nil {
		return 0
	}
	return l.dist.Total()
}

var (
	_ ports.Table  = (*LazySource)(nil)
	_ ports.Loader = (*LazySource)(nil)
)
