package httpapi

import (
    "encoding/json"
    "io"
    "net/http"
)

const (
    mediaJSON = "application/json"
    mediaHTML = "text/html; charset=utf-8"
)

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", mediaJSON)
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

func toHTML(w http.ResponseWriter, status int, body string) {
    w.Header().Set("Content-Type", mediaHTML)
    w.WriteHeader(status)
    _, _ = io.WriteString(w, body)
}
