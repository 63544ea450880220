package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tinoosan/hello-api/internal/errs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func setup(t *testing.T) http.Handler {
	t.Helper()
	return New(Options{MetricsEnabled: true, CORSOrigins: []string{"*"}}, testLogger()).Handler()
}

func do(h http.Handler, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoot_ServesLandingPage(t *testing.T) {
	h := setup(t)
	rec := do(h, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "<h1>Hello World from FastAPI!</h1>")
	assert.Contains(t, rec.Body.String(), "<title>FastAPI Hello World</title>")
	assert.Contains(t, rec.Body.String(), "<p>This is a simple FastAPI application deployed on AWS Amplify.</p>")
}

func TestHello(t *testing.T) {
	h := setup(t)
	rec := do(h, http.MethodGet, "/api/hello", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Hello World!", "status": "success"}`, rec.Body.String())
	assert.Equal(t, `{"message":"Hello World!","status":"success"}`, strings.TrimSpace(rec.Body.String()))
}

func TestHealth(t *testing.T) {
	h := setup(t)
	rec := do(h, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "healthy", "service": "FastAPI Hello World"}`, rec.Body.String())
	assert.Equal(t, `{"status":"healthy","service":"FastAPI Hello World"}`, strings.TrimSpace(rec.Body.String()))
}

func TestRepeatedRequestsAreByteIdentical(t *testing.T) {
	h := setup(t)
	for _, path := range []string{"/", "/api/hello", "/api/health"} {
		first := do(h, http.MethodGet, path, nil)
		for i := 0; i < 5; i++ {
			again := do(h, http.MethodGet, path, nil)
			assert.Equal(t, first.Code, again.Code, path)
			assert.Equal(t, first.Body.Bytes(), again.Body.Bytes(), path)
			assert.Equal(t, first.Header().Get("Content-Type"), again.Header().Get("Content-Type"), path)
		}
	}
}

func TestUnknownRoute_NotFound(t *testing.T) {
	h := setup(t)
	rec := do(h, http.MethodGet, "/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}

func TestWrongMethod_NotAllowed(t *testing.T) {
	h := setup(t)
	for _, path := range []string{"/", "/api/hello", "/api/health"} {
		rec := do(h, http.MethodPost, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"), path)
		assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String(), path)
	}
}

func TestConcurrentRequestsDoNotInterfere(t *testing.T) {
	srv := httptest.NewServer(setup(t))
	defer srv.Close()

	want := map[string]string{
		"/api/hello":  `{"message":"Hello World!","status":"success"}`,
		"/api/health": `{"status":"healthy","service":"FastAPI Hello World"}`,
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		path := "/api/hello"
		if i%2 == 1 {
			path = "/api/health"
		}
		g.Go(func() error {
			resp, err := srv.Client().Get(srv.URL + path)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
			assert.Equal(t, want[path], strings.TrimSpace(string(b)), path)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRequestID(t *testing.T) {
	h := setup(t)

	rec := do(h, http.MethodGet, "/api/hello", map[string]string{"X-Request-Id": "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	rec = do(h, http.MethodGet, "/api/hello", nil)
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestRecoverer(t *testing.T) {
	s := New(Options{}, testLogger())
	s.rt.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	rec := do(s.Handler(), http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := setup(t)

	rec := do(h, http.MethodGet, "/api/hello", map[string]string{"Origin": "https://example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(h, http.MethodOptions, "/api/health", map[string]string{
		"Origin":                        "https://example.com",
		"Access-Control-Request-Method": http.MethodGet,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisabled(t *testing.T) {
	h := New(Options{}, testLogger()).Handler()
	rec := do(h, http.MethodGet, "/api/hello", map[string]string{"Origin": "https://example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOpenAPI(t *testing.T) {
	h := setup(t)
	rec := do(h, http.MethodGet, "/openapi.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Summary   string `json:"summary"`
			Responses map[string]struct {
				Content map[string]json.RawMessage `json:"content"`
			} `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "Hello World API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.Len(t, doc.Paths, 3)
	assert.Contains(t, doc.Paths["/"]["get"].Responses["200"].Content, "text/html")
	assert.Contains(t, doc.Paths["/api/hello"]["get"].Responses["200"].Content, "application/json")
	assert.Equal(t, "Health Check", doc.Paths["/api/health"]["get"].Summary)
}

func TestMetrics(t *testing.T) {
	h := setup(t)
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/hello", "200")
	before := testutil.ToFloat64(counter)

	do(h, http.MethodGet, "/api/hello", nil)
	do(h, http.MethodGet, "/api/hello", nil)
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	rec := do(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello_http_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	h := New(Options{}, testLogger()).Handler()
	rec := do(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFor(nil))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("route: %w", errs.ErrNotFound)))
	assert.Equal(t, http.StatusMethodNotAllowed, statusFor(errs.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(errs.ErrInvalid))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
