package export

import (
	"log/slog"
	"time"

	"github.com/aretw0/menutree/internal/logging"
)

// Event describes one export run.
type Event struct {
	Duration time.Duration
	Buttons  int
	Err      error
}

// Exporter wraps Build with logging and an observability hook.
type Exporter struct {
	logger   *slog.Logger
	onExport func(*Event)
}

// Option configures the Exporter.
type Option func(*Exporter)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(x *Exporter) {
		x.logger = logger
	}
}

// WithExportHook registers a callback fired after every export, successful or not.
func WithExportHook(fn func(*Event)) Option {
	return func(x *Exporter) {
		x.onExport = fn
	}
}

// NewExporter creates an Exporter.
func NewExporter(opts ...Option) *Exporter {
	x := &Exporter{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Export builds the document for src.
func (x *Exporter) Export(src Source) (*Document, error) {
	start := time.Now()
	doc, err := Build(src)

	ev := &Event{Duration: time.Since(start), Err: err}
	if err != nil {
		x.logger.Error("export failed", "err", err)
	} else {
		ev.Buttons = doc.Count()
		x.logger.Debug("document exported", "buttons", ev.Buttons, "duration", ev.Duration)
	}
	if x.onExport != nil {
		x.onExport(ev)
	}
	return doc, err
}
