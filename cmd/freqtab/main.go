// Command freqtab builds a conditional frequency table from a directory
// of text files (one condition per file), tabulates it to stdout, and
// optionally exports it to an xlsx workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"freqtab/adapters/excelsink"
	"freqtab/domain/cfd"
	"freqtab/internal"
	"freqtab/internal/config"
	"freqtab/internal/corpus"
	"freqtab/internal/plot"
	"freqtab/internal/tabulate"
	"freqtab/ports"
)

func main() {
	dir := flag.String("dir", "", "corpus directory (overrides CORPUS_DIR)")
	ext := flag.String("ext", "", "only load files with this extension, e.g. .txt")
	samples := flag.String("samples", "", "comma-separated sample columns (default: all, by frequency)")
	conditions := flag.String("conditions", "", "comma-separated condition rows (default: all)")
	cumulative := flag.Bool("cumulative", false, "tabulate running sums instead of raw counts")
	lower := flag.Bool("lower", false, "lowercase observations before counting")
	sorted := flag.Bool("sorted", false, "order exported conditions alphabetically")
	workbook := flag.String("xlsx", "", "write the selection to this xlsx workbook")
	flag.Parse()

	if err := run(*dir, *ext, *samples, *conditions, *cumulative, *lower, *sorted, *workbook); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir, ext, samples, conditions string, cumulative, lower, sorted bool, workbook string) error {
	godotenv.Load()

	if dir != "" {
		os.Setenv("CORPUS_DIR", dir)
	}
	if ext != "" {
		os.Setenv("CORPUS_EXT", ext)
	}
	if workbook != "" {
		os.Setenv("EXPORT_WORKBOOK", workbook)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	ctx := context.Background()
	var pred func(string) bool
	if cfg.Corpus.Ext != "" {
		pred = corpus.ExtFilter(cfg.Corpus.Ext)
	}
	docs, err := corpus.LoadDir(ctx, cfg.Corpus.Dir, pred)
	if err != nil {
		return err
	}
	logger.Info("building table from %d documents", len(docs))

	opts := cfd.Options{}
	if lower {
		opts.Transform = strings.ToLower
	}
	table, err := cfd.Build(cfd.ObservationsSource(corpus.Observations(docs)), opts)
	if err != nil {
		return err
	}

	sel := tabulate.Selection{
		Conditions: splitList(conditions),
		Samples:    splitList(samples),
		Cumulative: cumulative || cfg.Export.Cumulative,
	}
	if err := tabulate.Render(os.Stdout, table, sel); err != nil {
		return err
	}

	if cfg.Export.Workbook == "" {
		return nil
	}

	spec := plot.Spec{Selection: sel}
	if sorted {
		spec.OrderBy = strings.Compare
	}
	session := plot.NewSession(excelsink.NewSink(cfg.Export.Workbook))
	if cfg.Export.ArtifactDir != "" {
		session.SetArtifactDir(cfg.Export.ArtifactDir)
	}
	directives := ports.PlotDirectives{
		Title: "frequencies",
		Grid:  true,
	}
	if err := session.Render(ctx, table, spec, directives); err != nil {
		return err
	}
	logger.Info("exported selection to %s", cfg.Export.Workbook)
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
