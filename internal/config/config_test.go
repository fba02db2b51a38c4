package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCorpusDir(t *testing.T) {
	t.Setenv("CORPUS_DIR", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CORPUS_DIR", t.TempDir())
	t.Setenv("CORPUS_EXT", "")
	t.Setenv("EXPORT_WORKBOOK", "")
	t.Setenv("EXPORT_CUMULATIVE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Corpus.Ext)
	assert.Equal(t, "", cfg.Export.Workbook)
	assert.False(t, cfg.Export.Cumulative)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadParsesSettings(t *testing.T) {
	t.Setenv("CORPUS_DIR", t.TempDir())
	t.Setenv("CORPUS_EXT", ".txt")
	t.Setenv("EXPORT_CUMULATIVE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".txt", cfg.Corpus.Ext)
	assert.True(t, cfg.Export.Cumulative)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}
