package httpapi

import (
    "errors"
    "net/http"

    "github.com/tinoosan/hello-api/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
    Detail string `json:"detail"`
}

func writeErr(w http.ResponseWriter, status int) {
    toJSON(w, status, errorResponse{Detail: http.StatusText(status)})
}

// statusFor maps sentinel errors onto HTTP status codes.
func statusFor(err error) int {
    switch {
    case err == nil:
        return http.StatusOK
    case errors.Is(err, errs.ErrNotFound):
        return http.StatusNotFound
    case errors.Is(err, errs.ErrMethodNotAllowed):
        return http.StatusMethodNotAllowed
    case errors.Is(err, errs.ErrInvalid):
        return http.StatusUnprocessableEntity
    default:
        return http.StatusInternalServerError
    }
}

func notFound(w http.ResponseWriter, r *http.Request) {
    writeErr(w, statusFor(errs.ErrNotFound))
}

// methodNotAllowed answers a known path hit with the wrong verb. Every route is GET-only.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Allow", http.MethodGet)
    writeErr(w, statusFor(errs.ErrMethodNotAllowed))
}
