package lazyfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freqtab/domain/cfd"
	"freqtab/domain/core"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestOpenCountsFileRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "speech.txt", "citizens of the the republic")

	src := Open(path, nil)
	v, ok := src.Get("the")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 5, src.Total())
}

func TestOpenMissingFile(t *testing.T) {
	src := Open(filepath.Join(t.TempDir(), "absent.txt"), nil)

	err := src.Load()
	require.Error(t, err)
	assert.True(t, core.IsSourceUnavailable(err))
}

func TestResourceConditionName(t *testing.T) {
	r := Resource("/corpus/1789.txt")
	assert.Equal(t, "1789", r.Condition)
}

func TestDirResourcesBuildsLazyCFD(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1793.txt", "The The the")
	writeFile(t, dir, "1789.txt", "the people")
	writeFile(t, dir, "notes.md", "ignored")

	rs, err := DirResources(dir, func(name string) bool {
		return strings.HasSuffix(name, ".txt")
	})
	require.NoError(t, err)
	require.Len(t, rs, 2)

	c, err := cfd.Build(cfd.ResourcesSource(rs), cfd.Options{Transform: strings.ToLower})
	require.NoError(t, err)
	assert.Equal(t, []string{"1789", "1793"}, c.Conditions())

	n, err := cfd.Count(c, "1793", "the")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDirResourcesMissingDir(t *testing.T) {
	_, err := DirResources(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}
