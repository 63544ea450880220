package httpapi

import (
    "encoding/json"
    "net/http"
    "strings"
)

const (
    apiTitle   = "Hello World API"
    apiVersion = "1.0.0"
)

type openAPIDoc struct {
    OpenAPI string                         `json:"openapi"`
    Info    openAPIInfo                    `json:"info"`
    Paths   map[string]map[string]opObject `json:"paths"`
}

type openAPIInfo struct {
    Title   string `json:"title"`
    Version string `json:"version"`
}

type opObject struct {
    Summary     string                `json:"summary"`
    OperationID string                `json:"operationId"`
    Responses   map[string]opResponse `json:"responses"`
}

type opResponse struct {
    Description string              `json:"description"`
    Content     map[string]struct{} `json:"content"`
}

// buildOpenAPI renders the API description once; the result is served as-is.
func buildOpenAPI(pages []page) []byte {
    doc := openAPIDoc{
        OpenAPI: "3.1.0",
        Info:    openAPIInfo{Title: apiTitle, Version: apiVersion},
        Paths:   make(map[string]map[string]opObject, len(pages)),
    }
    for _, p := range pages {
        media, _, _ := strings.Cut(p.mediaType, ";")
        doc.Paths[p.path] = map[string]opObject{
            "get": {
                Summary:     p.summary,
                OperationID: p.operationID + "_get",
                Responses: map[string]opResponse{
                    "200": {Description: "Successful Response", Content: map[string]struct{}{media: {}}},
                },
            },
        }
    }
    b, err := json.Marshal(doc)
    if err != nil {
        // only plain strings and maps above
        panic(err)
    }
    return b
}

// openapiSpec serves the generated API description.
func (s *Server) openapiSpec(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", mediaJSON)
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(s.openapi)
}
