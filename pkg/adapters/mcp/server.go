package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/menutree/internal/logging"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/ports"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes editing sessions as MCP tools.
type Server struct {
	sessions  *session.Manager
	exporter  *export.Exporter
	sink      ports.ExportSink
	sanitizer sanitize.Sanitizer
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithExporter replaces the default exporter.
func WithExporter(x *export.Exporter) Option {
	return func(s *Server) {
		s.exporter = x
	}
}

// WithSink registers the publish_document tool.
func WithSink(sink ports.ExportSink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithSanitizer sets the limits applied to free text arguments.
func WithSanitizer(san sanitize.Sanitizer) Option {
	return func(s *Server) {
		s.sanitizer = san
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager, version string, opts ...Option) *Server {
	s := &Server{
		sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.exporter == nil {
		s.exporter = export.NewExporter(export.WithLogger(s.logger))
	}
	s.mcpServer = server.NewMCPServer("menutree-mcp", strings.TrimSpace(version),
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const exportURIPrefix = "menutree://sessions/"

func (s *Server) registerResources() {
	// EXPOSE: menutree://sessions/{session_id}/export
	tmpl := mcp.NewResourceTemplate(exportURIPrefix+"{session_id}/export", "Exported menu document",
		mcp.WithTemplateDescription("The document a session would export right now."),
		mcp.WithTemplateMIMEType(export.MIMEType),
	)
	s.mcpServer.AddResourceTemplate(tmpl, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		sid, ok := strings.CutPrefix(uri, exportURIPrefix)
		if ok {
			sid, ok = strings.CutSuffix(sid, "/export")
		}
		if !ok || sid == "" {
			return nil, fmt.Errorf("unexpected resource uri %q", uri)
		}

		doc, err := s.exportSession(ctx, sid)
		if err != nil {
			return nil, err
		}
		data, err := export.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: export.MIMEType,
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) exportSession(ctx context.Context, sid string) (*export.Document, error) {
	var doc *export.Document
	err := s.sessions.WithSession(ctx, sid, func(ed *editor.Editor) error {
		var err error
		doc, err = s.exporter.Export(ed.Tree())
		return err
	})
	return doc, err
}

// NodeView is a node as returned by the tools, with its display title.
type NodeView struct {
	*domain.Node
	Title string `json:"title"`
}

func view(ed *editor.Editor, n *domain.Node) NodeView {
	title, _ := ed.Title(n.ID)
	return NodeView{Node: n, Title: title}
}
