// Package lazyfile adapts plain files on disk into lazily scanned
// distribution backends: one file per condition, counts computed on first
// access and cached for the life of the source.
package lazyfile

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"freqtab/domain/cfd"
	"freqtab/domain/freq"
)

// Open returns a lazy distribution backed by the file at path. The file
// is not touched until the first lookup or enumeration; a missing or
// unreadable file surfaces then as a source-unavailable error. transform
// is applied to each whitespace-separated record before counting.
func Open(path string, transform func(string) string) *freq.LazySource {
	return freq.NewLazySource(path, opener(path), transform)
}

// Resource names the file at path as a builder resource. The condition
// label is the file's base name without extension.
func Resource(path string) cfd.Resource {
	return cfd.Resource{
		Condition: conditionName(path),
		Open:      opener(path),
	}
}

// DirResources lists dir and returns one builder resource per regular
// file accepted by pred (nil accepts everything), sorted by filename.
// Listing failures are immediate; the files themselves stay untouched
// until first access.
func DirResources(dir string, pred func(name string) bool) ([]cfd.Resource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var rs []cfd.Resource
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if pred != nil && !pred(e.Name()) {
			continue
		}
		rs = append(rs, Resource(filepath.Join(dir, e.Name())))
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Condition < rs[j].Condition })
	return rs, nil
}

func opener(path string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

func conditionName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
