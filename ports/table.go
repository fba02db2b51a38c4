package ports

// Table is the uniform read contract over any table-like container: a
// conditional frequency table answers with its per-condition distribution,
// a distribution answers with an outcome count. New backend kinds only need
// to implement this interface; the generic accessor and every consumer
// (tabulation, export, reporting) operate through it exclusively.
type Table interface {
	// Get returns the value stored under key. The second result reports
	// whether the key is tracked at all. Containers that default missing
	// keys to a value (a distribution reporting 0 for an unseen outcome)
	// return true for every key.
	Get(key string) (any, bool)

	// Each calls fn for every (key, value) pair in the container's
	// enumeration order until fn returns false. Enumeration must be
	// restartable; the order is backend-defined and not comparable
	// across backend kinds.
	Each(fn func(key string, value any) bool)
}

// Loader is implemented by lazily materialized tables. Load brings the
// table's contents into memory on first call and is a cached no-op after
// that; it is the only operation on a lazy table that can fail.
type Loader interface {
	Load() error
}

// Counter is the read contract of an opaque frequency-count object, such
// as an n-gram table. Only these two operations are relied upon; the
// internal representation stays with the producer.
type Counter interface {
	// Count returns the frequency of sample, 0 if never observed.
	Count(sample string) int

	// EachCount calls fn for every observed (sample, count) pair until
	// fn returns false.
	EachCount(fn func(sample string, n int) bool)
}
