package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/itdepends/pkg/observability"
)

func TestClient_Headers(t *testing.T) {
	headers := make(chan http.Header, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(time.Second, map[string]string{"Accept": "application/json"})
	var v map[string]any
	require.NoError(t, c.Get(context.Background(), server.URL, &v))

	got := <-headers
	assert.Equal(t, UserAgent(), got.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Get("Accept"))

	custom := NewClient(time.Second, map[string]string{"User-Agent": "custom/1"})
	require.NoError(t, custom.Get(context.Background(), server.URL, &v))
	got = <-headers
	assert.Equal(t, "custom/1", got.Get("User-Agent"))
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(0, nil).http.Timeout)
	assert.Equal(t, 5*time.Second, NewClient(5*time.Second, nil).http.Timeout)
}

func TestCheckStatus(t *testing.T) {
	for _, code := range []int{200, 201, 204} {
		assert.NoError(t, checkStatus(code), "status %d", code)
	}
	for _, code := range []int{301, 400, 404, 429, 500, 503} {
		assert.Error(t, checkStatus(code), "status %d", code)
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://search.maven.org/solrsearch/select",
		redact("https://search.maven.org/solrsearch/select?q=g:a+AND+a:b&rows=1"))
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu        sync.Mutex
	requests  int
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestClient_HTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var v any
	require.Error(t, NewClient(0, nil).Get(context.Background(), server.URL, &v))
	assert.Equal(t, 1, hooks.requests)
	assert.Equal(t, []int{http.StatusBadGateway}, hooks.responses)
}
