// Package cfd implements conditional frequency tables: a mapping from a
// condition to exactly one outcome distribution, readable through the same
// generic contract as the distributions themselves. The table is built
// once and read-only afterwards; consumers reach counts either through the
// typed methods here or through the generic accessor in access.go.
package cfd

import (
	"freqtab/domain/core"
	"freqtab/ports"
)

// CFD is a condition → distribution mapping. Conditions enumerate in the
// order they were first added (the table's natural order). Each condition
// maps to exactly one distribution; distributions need not share a sample
// vocabulary.
type CFD struct {
	tables map[string]ports.Table
	order  []string
}

// New returns an empty conditional frequency table.
func New() *CFD {
	return &CFD{tables: make(map[string]ports.Table)}
}

// Set binds condition to t. Rebinding an existing condition replaces its
// distribution but keeps its position in the natural order.
func (c *CFD) Set(condition string, t ports.Table) {
	if _, seen := c.tables[condition]; !seen {
		c.order = append(c.order, condition)
	}
	c.tables[condition] = t
}

// Len returns the number of conditions tracked.
func (c *CFD) Len() int {
	return len(c.order)
}

// Conditions returns the tracked conditions in natural order.
func (c *CFD) Conditions() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Table returns the distribution bound to condition. An untracked
// condition is an error — distinct from a tracked condition in which some
// outcome was never observed.
func (c *CFD) Table(condition string) (ports.Table, error) {
	t, ok := c.tables[condition]
	if !ok {
		return nil, core.NewConditionNotFound(condition)
	}
	return t, nil
}

// Get implements ports.Table. Unlike a distribution, a CFD does not
// default missing keys: an untracked condition reports absence.
func (c *CFD) Get(key string) (any, bool) {
	t, ok := c.tables[key]
	if !ok {
		return nil, false
	}
	return t, true
}

// Each implements ports.Table, enumerating conditions in natural order.
func (c *CFD) Each(fn func(key string, value any) bool) {
	for _, cond := range c.order {
		if !fn(cond, c.tables[cond]) {
			return
		}
	}
}

var _ ports.Table = (*CFD)(nil)
