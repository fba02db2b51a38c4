package plot

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/uuid"

	"freqtab/domain/cfd"
	"freqtab/domain/core"
	"freqtab/internal"
	"freqtab/ports"
)

// Session drives one plotting sink. It holds no process-wide state: every
// Render cycle acquires its own transient tab-separated artifact and
// disposes of it on every exit path, sink failure included. A session must
// not be shared across concurrent renders.
type Session struct {
	id   string
	sink ports.PlotSink
	dir  string
	log  *internal.Logger
}

// NewSession returns a session bound to sink. Transient artifacts go to
// the default temp directory.
func NewSession(sink ports.PlotSink) *Session {
	return &Session{
		id:   uuid.NewString(),
		sink: sink,
		log:  internal.DefaultLogger,
	}
}

// ID returns the session's identifier, used to name its artifacts.
func (s *Session) ID() string {
	return s.id
}

// SetArtifactDir redirects transient artifacts to dir.
func (s *Session) SetArtifactDir(dir string) {
	s.dir = dir
}

// Render exports the selected slice of c, writes it as a transient TSV,
// and hands it to the sink together with display directives. The y-axis
// label distinguishes cumulative from raw counts unless the directives
// already set one. Sink errors come back wrapped as render-sink failures
// and are never retried here.
func (s *Session) Render(ctx context.Context, c *cfd.CFD, spec Spec, d ports.PlotDirectives) error {
	grid, err := Export(c, spec)
	if err != nil {
		return err
	}

	if d.YLabel == "" {
		if spec.Cumulative {
			d.YLabel = "cumulative counts"
		} else {
			d.YLabel = "counts"
		}
	}
	if d.XLabel == "" {
		d.XLabel = "condition"
	}
	if d.SeriesLabels == nil {
		d.SeriesLabels = grid.Samples()
	}

	path, err := s.writeArtifact(grid)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			s.log.Warn("session %s: remove artifact %s: %v", s.id, path, rmErr)
		}
	}()

	s.log.Debug("session %s: rendering %d rows from %s", s.id, len(grid.Rows), path)
	if err := s.sink.Render(ctx, path, d); err != nil {
		return core.NewRenderSinkFailure(err)
	}
	return nil
}

func (s *Session) writeArtifact(g Grid) (string, error) {
	f, err := os.CreateTemp(s.dir, "freqtab-"+s.id+"-*.tsv")
	if err != nil {
		return "", fmt.Errorf("create export artifact: %w", err)
	}
	path := f.Name()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	writeErr := w.Write(g.Header)
	if writeErr == nil {
		writeErr = w.WriteAll(g.Rows)
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("write export artifact: %w", writeErr)
	}
	return path, nil
}
