package httpapi

import (
    "net/http"
)

// page is a fixed GET route together with the facts the API description needs.
type page struct {
    path        string
    operationID string
    summary     string
    mediaType   string
    handler     http.HandlerFunc
}

// pages lists the public routes in registration order.
func (s *Server) pages() []page {
    return []page{
        {path: "/", operationID: "read_root", summary: "Read Root", mediaType: mediaHTML, handler: s.root},
        {path: "/api/hello", operationID: "hello", summary: "Hello", mediaType: mediaJSON, handler: s.hello},
        {path: "/api/health", operationID: "health_check", summary: "Health Check", mediaType: mediaJSON, handler: s.healthCheck},
    }
}

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
    pages := s.pages()
    for _, p := range pages {
        s.rt.Get(p.path, p.handler)
    }

    s.openapi = buildOpenAPI(pages)
    s.rt.Get("/openapi.json", s.openapiSpec)

    if s.opts.MetricsEnabled {
        s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
    }

    s.rt.NotFound(notFound)
    s.rt.MethodNotAllowed(methodNotAllowed)
}
