package menutree

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/menutree/internal/logging"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/outline"
	"github.com/aretw0/menutree/pkg/tree"
)

// Version is the release version. Builds override it with -ldflags "-X".
var Version = "0.1.0-dev"

// Menu is the high-level entry point: one tree, its editor and an exporter.
type Menu struct {
	editor   *editor.Editor
	exporter *export.Exporter

	logger     *slog.Logger
	treeOpts   []tree.Option
	hooks      editor.Hooks
	exportHook func(*export.Event)
	sanitizer  *sanitize.Sanitizer
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger shared by the editor and the exporter.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// WithIDGenerator replaces the UUID node id generator.
func WithIDGenerator(gen tree.IDGenerator) Option {
	return func(m *Menu) {
		m.treeOpts = append(m.treeOpts, tree.WithIDGenerator(gen))
	}
}

// WithHooks registers editing hooks.
func WithHooks(hooks editor.Hooks) Option {
	return func(m *Menu) {
		m.hooks = hooks
	}
}

// WithExportHook registers a callback fired after every export.
func WithExportHook(fn func(*export.Event)) Option {
	return func(m *Menu) {
		m.exportHook = fn
	}
}

// WithInputLimit makes Apply reject outline fields longer than maxSize bytes
// and strip control characters, as the HTTP and MCP transports do.
// A non-positive maxSize uses the default limit.
func WithInputLimit(maxSize int) Option {
	return func(m *Menu) {
		san := sanitize.New(maxSize)
		m.sanitizer = &san
	}
}

// New creates an empty menu.
func New(opts ...Option) *Menu {
	m := &Menu{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	m.editor = editor.New(tree.New(m.treeOpts...),
		editor.WithLogger(m.logger),
		editor.WithHooks(m.hooks),
	)
	xopts := []export.Option{export.WithLogger(m.logger)}
	if m.exportHook != nil {
		xopts = append(xopts, export.WithExportHook(m.exportHook))
	}
	m.exporter = export.NewExporter(xopts...)
	return m
}

// Editor returns the editor of the menu.
func (m *Menu) Editor() *editor.Editor {
	return m.editor
}

// Load replays a YAML outline file on the menu.
func (m *Menu) Load(path string) error {
	o, err := outline.Load(path)
	if err != nil {
		return err
	}
	return m.Apply(o)
}

// Apply replays a parsed outline on the menu.
func (m *Menu) Apply(o *outline.Outline) error {
	if m.sanitizer != nil {
		if err := outline.Clean(o, m.sanitizer.Text); err != nil {
			return fmt.Errorf("failed to apply outline: %w", err)
		}
	}
	if err := outline.Apply(m.editor, o); err != nil {
		return fmt.Errorf("failed to apply outline: %w", err)
	}
	return nil
}

// Export builds the document for the current tree.
func (m *Menu) Export() (*export.Document, error) {
	return m.exporter.Export(m.editor.Tree())
}

// Write exports the menu and encodes it to w.
func (m *Menu) Write(w io.Writer) error {
	doc, err := m.Export()
	if err != nil {
		return err
	}
	return export.Encode(w, doc)
}
