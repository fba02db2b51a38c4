package ports

import "context"

// PlotDirectives describes how a plot sink should present an exported
// table: labels, series names and a few display toggles. Sinks are free
// to ignore directives they cannot express.
type PlotDirectives struct {
	Title        string
	XLabel       string
	YLabel       string
	SeriesLabels []string
	Grid         bool
	TickRotation int
}

// PlotSink renders a rectangular tabular artifact. dataPath names a
// tab-separated file whose first row is the header; the sink must not
// assume the file outlives the call. A sink error is surfaced to the
// caller as a render failure and is never retried automatically.
type PlotSink interface {
	Render(ctx context.Context, dataPath string, d PlotDirectives) error
}
