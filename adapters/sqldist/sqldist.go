// Package sqldist stores per-condition outcome counts in a SQL database
// and serves them as lazily materialized distribution backends. It proves
// the table contract is open: nothing in the accessor or its consumers
// knows this backend exists.
package sqldist

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"freqtab/domain/core"
	"freqtab/domain/freq"
	"freqtab/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS freq_counts (
	condition TEXT    NOT NULL,
	sample    TEXT    NOT NULL,
	n         INTEGER NOT NULL CHECK (n >= 0),
	PRIMARY KEY (condition, sample)
)`

// Store is a SQL-backed collection of distributions, one per condition.
type Store struct {
	db *sqlx.DB
}

// Open connects to the sqlite database at dsn (":memory:" for an
// in-memory store) and ensures the count schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open count store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init count store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add accumulates n observations of sample under condition.
func (s *Store) Add(condition, sample string, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO freq_counts (condition, sample, n) VALUES (?, ?, ?)
		ON CONFLICT (condition, sample) DO UPDATE SET n = n + excluded.n`,
		condition, sample, n)
	if err != nil {
		return fmt.Errorf("add count for %s/%s: %w", condition, sample, err)
	}
	return nil
}

// Conditions returns every condition with at least one stored count, in
// lexicographic order.
func (s *Store) Conditions() ([]string, error) {
	var conds []string
	err := s.db.Select(&conds, `SELECT DISTINCT condition FROM freq_counts ORDER BY condition`)
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", err)
	}
	return conds, nil
}

// Dist returns the lazy distribution for condition. The database is
// queried on first access only; the loaded counts enumerate by descending
// count, ties in sample order.
func (s *Store) Dist(condition string) *Dist {
	return &Dist{store: s, condition: condition}
}

// Dist is one condition's SQL-backed distribution. It satisfies the same
// read contract as the in-memory backends and caches its rows after the
// first load.
type Dist struct {
	store     *Store
	condition string

	loaded bool
	dist   *freq.Dist
	err    error
}

type countRow struct {
	Sample string `db:"sample"`
	N      int    `db:"n"`
}

// Load implements ports.Loader; a query failure is cached and reported as
// source-unavailable on every subsequent call.
func (d *Dist) Load() error {
	if d.loaded {
		return d.err
	}
	d.loaded = true

	var rows []countRow
	err := d.store.db.Select(&rows, `
		SELECT sample, n FROM freq_counts
		WHERE condition = ?
		ORDER BY n DESC, sample ASC`, d.condition)
	if err != nil {
		d.err = core.NewSourceUnavailable("sql:"+d.condition, err)
		return d.err
	}

	d.dist = freq.NewDist()
	for _, r := range rows {
		d.dist.Add(r.Sample, r.N)
	}
	return nil
}

// Get implements ports.Table; unknown samples and failed loads report 0.
func (d *Dist) Get(key string) (any, bool) {
	if d.Load() != nil {
		return 0, true
	}
	return d.dist.Get(key)
}

// Each implements ports.Table; a failed load enumerates nothing.
func (d *Dist) Each(fn func(key string, value any) bool) {
	if d.Load() != nil {
		return
	}
	d.dist.Each(fn)
}

var (
	_ ports.Table  = (*Dist)(nil)
	_ ports.Loader = (*Dist)(nil)
)
