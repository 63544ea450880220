// Package httpapi wires the HTTP surface of the hello service.
// Handlers are stateless and return canned payloads.
package httpapi

import (
    "log/slog"
    "net/http"

    chi "github.com/go-chi/chi/v5"
    "github.com/go-chi/cors"
)

// Options tune the optional parts of the router.
type Options struct {
    // MetricsEnabled mounts GET /metrics.
    MetricsEnabled bool
    // CORSOrigins lists allowed origins; empty disables CORS headers.
    CORSOrigins []string
}

// Server wires handlers and middleware using Chi.
type Server struct {
    opts    Options
    log     *slog.Logger
    rt      *chi.Mux
    openapi []byte
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging and panic recovery.
func New(opts Options, logger *slog.Logger) *Server {
    if logger == nil {
        logger = slog.Default()
    }
    r := chi.NewRouter()
    r.Use(requestID)
    r.Use(requestLogger(logger))
    r.Use(recoverer(logger))
    r.Use(metricsMiddleware)
    if len(opts.CORSOrigins) > 0 {
        r.Use(cors.Handler(cors.Options{
            AllowedOrigins: opts.CORSOrigins,
            AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
            AllowedHeaders: []string{"*"},
            ExposedHeaders: []string{"X-Request-Id"},
            MaxAge:         300,
        }))
    }

    s := &Server{opts: opts, log: logger, rt: r}
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }
