package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete pipeline configuration. The library
// itself is configuration-free; these settings only wire the CLI.
type Config struct {
	Corpus CorpusConfig
	Export ExportConfig
	Log    LogConfig
}

// CorpusConfig locates the input corpus.
type CorpusConfig struct {
	// Dir is the directory whose files become per-condition documents.
	Dir string
	// Ext filters documents by filename extension, empty for all files.
	Ext string
}

// ExportConfig holds export/render settings.
type ExportConfig struct {
	// Workbook is the xlsx path the excel sink writes to; empty disables
	// the export step.
	Workbook string
	// ArtifactDir overrides where transient TSV artifacts are created.
	ArtifactDir string
	// Cumulative renders running sums instead of raw counts.
	Cumulative bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Corpus: CorpusConfig{
			Dir: os.Getenv("CORPUS_DIR"),
			Ext: getEnvOrDefault("CORPUS_EXT", ""),
		},
		Export: ExportConfig{
			Workbook:    getEnvOrDefault("EXPORT_WORKBOOK", ""),
			ArtifactDir: getEnvOrDefault("EXPORT_ARTIFACT_DIR", ""),
			Cumulative:  getEnvBoolOrDefault("EXPORT_CUMULATIVE", false),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Corpus.Dir == "" {
		return fmt.Errorf("CORPUS_DIR is required")
	}
	info, err := os.Stat(cfg.Corpus.Dir)
	if err != nil {
		return fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus directory %s is not a directory", cfg.Corpus.Dir)
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
