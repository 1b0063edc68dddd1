package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/menutree/internal/logging"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/ports"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// Server exposes editing sessions over HTTP.
// It implements the generated ServerInterface.
type Server struct {
	sessions  *session.Manager
	exporter  *export.Exporter
	sink      ports.ExportSink
	sanitizer sanitize.Sanitizer
	streams   *StreamManager
	metrics   http.Handler
	validate  bool
	version   string
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithExporter replaces the default exporter, e.g. to attach metrics hooks.
func WithExporter(x *export.Exporter) Option {
	return func(s *Server) {
		s.exporter = x
	}
}

// WithSink enables POST /sessions/{sid}/publish.
func WithSink(sink ports.ExportSink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithSanitizer sets the limits applied to free text fields.
func WithSanitizer(san sanitize.Sanitizer) Option {
	return func(s *Server) {
		s.sanitizer = san
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithRequestValidation toggles validation of requests against the OpenAPI document.
func WithRequestValidation(enabled bool) Option {
	return func(s *Server) {
		s.validate = enabled
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewHandler creates the HTTP handler for the session manager.
func NewHandler(sessions *session.Manager, opts ...Option) (http.Handler, error) {
	s := &Server{
		sessions: sessions,
		validate: true,
		version:  "dev",
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.exporter == nil {
		s.exporter = export.NewExporter(export.WithLogger(s.logger))
	}
	s.streams = NewStreamManager(s.logger)

	doc, err := Spec()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(enableCORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"app":         "menutree-http",
			"version":     strings.TrimSpace(s.version),
			"api_version": doc.Info.Version,
		})
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(openapiYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	var mws []MiddlewareFunc
	if s.validate {
		mw, err := validator(doc)
		if err != nil {
			s.logger.Error("request validation disabled", "err", err)
		} else {
			mws = append(mws, mw)
		}
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      mws,
		ErrorHandlerFunc: s.paramError,
	}), nil
}

var _ ServerInterface = (*Server)(nil)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>menutree API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
