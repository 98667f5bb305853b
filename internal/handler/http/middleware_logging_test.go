package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed/internal/utils"
)

// runLogged sends one request through withRequestID and withLogging and
// returns the single access log line.
func runLogged(t *testing.T, req *http.Request, next http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h, deps := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.withRequestID(h.withLogging(next)).ServeHTTP(rr, req)

	lines := deps.accessLogs(t)
	require.Len(t, lines, 1, "exactly one access log line per request")
	return rr, lines[0]
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		target          string
		handlerStatus   int
		handlerResponse string
		wantPath        string
		wantStatus      float64
		wantSize        float64
	}{
		{name: "GET 200", method: http.MethodGet, target: "/timeline", handlerStatus: http.StatusOK, handlerResponse: "OK", wantPath: "/timeline", wantStatus: 200, wantSize: 2},
		{name: "POST 201", method: http.MethodPost, target: "/posts", handlerStatus: http.StatusCreated, handlerResponse: "Created", wantPath: "/posts", wantStatus: 201, wantSize: 7},
		{name: "204 no body", method: http.MethodDelete, target: "/x", handlerStatus: http.StatusNoContent, wantPath: "/x", wantStatus: 204},
		{name: "query is not logged", method: http.MethodGet, target: "/timeline?cursor=abc&limit=2", handlerStatus: http.StatusOK, wantPath: "/timeline", wantStatus: 200},
		{name: "500", method: http.MethodGet, target: "/boom", handlerStatus: http.StatusInternalServerError, handlerResponse: "{}", wantPath: "/boom", wantStatus: 500, wantSize: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			}

			rr, line := runLogged(t, httptest.NewRequest(tt.method, tt.target, nil), next)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.wantPath, line["path"])
			assert.Equal(t, tt.wantStatus, line["status"])
			assert.Equal(t, tt.wantSize, line["size"])
			assert.Equal(t, rr.Header().Get(requestIDHeader), line["request_id"])
			assert.Equal(t, false, line["authenticated"])
			assert.Contains(t, line, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	_, line := runLogged(t, httptest.NewRequest(http.MethodGet, "/test", nil), func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, float64(0), line["size"])
}

func TestWithLogging_AuthenticatedFlag(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), aliceIdentity))

	_, line := runLogged(t, req, func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, true, line["authenticated"])
}

func TestWithLogging_NeverLogsHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	req.Header.Set("Authorization", "Bearer secret.token.value")
	req.Header.Set("Cookie", "session=secret-cookie")

	h, deps := newTestHandler(t)
	h.withRequestID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, deps.logs.String(), "secret.token.value")
	assert.NotContains(t, deps.logs.String(), "secret-cookie")
}

func TestWithLogging_ResponseSize(t *testing.T) {
	_, line := runLogged(t, httptest.NewRequest(http.MethodGet, "/test", nil), func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	assert.Equal(t, float64(1024), line["size"])
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 30 * time.Millisecond

	_, line := runLogged(t, httptest.NewRequest(http.MethodGet, "/slow", nil), func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
	})

	// zerolog writes durations in milliseconds by default
	duration, ok := line["duration"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, duration, float64(delay.Milliseconds()))
}

// ---- Panic is logged but not suppressed ----

func TestWithLogging_PanicIsLoggedAndPropagated(t *testing.T) {
	h, deps := newTestHandler(t)
	middleware := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	assert.Panics(t, func() {
		middleware.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))
	}, "withLogging does not recover panics")

	assert.Len(t, deps.accessLogs(t), 1)
}

func TestWithLogging_RequestIDWrittenOnce(t *testing.T) {
	h, deps := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	req.Header.Set(requestIDHeader, "req-once")
	h.withRequestID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))).
		ServeHTTP(httptest.NewRecorder(), req)

	raw := strings.TrimSpace(deps.logs.String())
	require.NotEmpty(t, raw)
	assert.Equal(t, 1, strings.Count(raw, `"request_id"`), raw)
	assert.Contains(t, raw, `"request_id":"req-once"`)
}

func TestWithLogging_WithoutRequestIDUsesHandlerLogger(t *testing.T) {
	h, deps := newTestHandler(t)

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	lines := deps.accessLogs(t)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(http.StatusAccepted), lines[0]["status"])
	assert.NotContains(t, lines[0], "request_id")
}
