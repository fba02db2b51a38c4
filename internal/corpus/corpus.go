// Package corpus loads raw per-document text from a directory. It sits at
// the input boundary of the table pipeline: tokenization beyond simple
// whitespace splitting belongs to the caller.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"freqtab/internal"
)

// Document is one named piece of raw corpus text, typically a file.
type Document struct {
	Name string
	Text string
}

// LoadDir reads every regular file in dir accepted by pred (nil accepts
// everything) and returns the documents in filename order. File contents
// are read concurrently; the first failure aborts the load.
func LoadDir(ctx context.Context, dir string, pred func(name string) bool) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load corpus dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if pred != nil && !pred(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	docs := make([]Document, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("read corpus file %s: %w", name, err)
			}
			docs[i] = Document{Name: name, Text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	internal.DefaultLogger.Debug("loaded %d corpus documents from %s", len(docs), dir)
	return docs, nil
}

// ExtFilter returns a filename predicate accepting the given extension,
// e.g. ".txt".
func ExtFilter(ext string) func(name string) bool {
	return func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ext)
	}
}

// Words splits text into whitespace-separated tokens. It is the identity
// tokenization the table builder consumes; no case folding happens here.
func Words(text string) []string {
	return strings.Fields(text)
}

// Observations maps each document to its token sequence keyed by document
// name, the shape the observation builder accepts.
func Observations(docs []Document) map[string][]string {
	m := make(map[string][]string, len(docs))
	for _, d := range docs {
		m[d.Name] = Words(d.Text)
	}
	return m
}
