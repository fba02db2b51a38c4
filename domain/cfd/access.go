package cfd

import (
	"fmt"

	"freqtab/domain/core"
	"freqtab/ports"
)

// Get is the generic element accessor: it folds the keys left-to-right
// over container, so Get(cfd, condition, outcome) is exactly
// Get(Get(cfd, condition), outcome) whatever backend sits underneath.
//
// Dispatch is on the runtime container only: a CFD consumes a condition
// key and yields its distribution, a distribution consumes an outcome key
// and yields a count, any other ports.Table consumes its natural key. An
// absent intermediate key short-circuits with ErrConditionNotFound —
// untracked conditions are errors, unseen outcomes inside a tracked
// distribution are 0. Lazy backends are materialized before lookup, so a
// broken backing resource surfaces here as ErrSourceUnavailable.
func Get(container ports.Table, keys ...string) (any, error) {
	var cur any = container
	for _, k := range keys {
		t, ok := cur.(ports.Table)
		if !ok {
			return nil, core.NewMalformedSelection(fmt.Sprintf("key %q applied to a non-table value", k))
		}
		if l, ok := t.(ports.Loader); ok {
			if err := l.Load(); err != nil {
				return nil, err
			}
		}
		v, ok := t.Get(k)
		if !ok {
			return nil, core.NewConditionNotFound(k)
		}
		cur = v
	}
	return cur, nil
}

// Count is the typed two-level lookup over a CFD. The condition must be
// tracked; the sample defaults to 0 when never observed under it.
func Count(c *CFD, condition, sample string) (int, error) {
	v, err := Get(c, condition, sample)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, core.NewMalformedSelection(fmt.Sprintf("value under %q is not a count", condition))
	}
	return n, nil
}
