package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kamal-hamza/content-hub/internal/adapters/repository"
	"github.com/kamal-hamza/content-hub/internal/core/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServices(t *testing.T) (*services.ListService, *services.StatsService) {
	t.Helper()
	repo, err := repository.NewCatalogRepository()
	require.NoError(t, err)
	return services.NewListService(repo), services.NewStatsService(repo)
}

func newTestRouter(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	list, stats := newTestServices(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]Option{withClock(func() time.Time { return fixed })}, opts...)
	return NewRouter(list, stats, opts...)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := get(t, newTestRouter(t), "/healthz")

	require.Equal(t, http.StatusOK, rr.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 6, body.Assets)
}

func TestRequestID(t *testing.T) {
	h := newTestRouter(t)

	t.Run("generated when missing", func(t *testing.T) {
		rr := get(t, h, "/healthz")
		assert.Len(t, rr.Header().Get(requestIDHeader), 36)
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
	})
}

func TestCORS(t *testing.T) {
	h := newTestRouter(t, WithAllowedOrigins([]string{"https://hub.example"}))

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "https://hub.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "https://hub.example", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicRecovery(t *testing.T) {
	mw := LogInternalServerErrors(zerolog.Nop())
	h := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	list, stats := newTestServices(t)
	srv := NewServer("127.0.0.1:0", list, stats)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln, 5*time.Second)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	defer transport.CloseIdleConnections()

	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `"status":"ok"`))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
