package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/itdepends/pkg/buildinfo"
	"github.com/matzehuels/itdepends/pkg/errors"
	"github.com/matzehuels/itdepends/pkg/observability"
)

// DefaultTimeout bounds a single registry request. The public search
// endpoint has no SLA and can be slow, so it is generous.
const DefaultTimeout = 2 * time.Minute

// Client provides the HTTP plumbing for registry lookups: default headers,
// status classification, JSON decoding and HTTP hooks.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given request timeout and default
// headers. A timeout <= 0 selects [DefaultTimeout]. A User-Agent header is
// added unless headers already sets one.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := map[string]string{"User-Agent": UserAgent()}
	for k, v := range headers {
		h[k] = v
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		headers: h,
	}
}

// UserAgent returns the default User-Agent, e.g. "itdepends/v1.2.0".
func UserAgent() string {
	return "itdepends/" + buildinfo.Version
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
//
// Transport failures and non-2xx statuses return [errors.ErrCodeNetwork];
// a body that cannot be decoded into v returns [errors.ErrCodeResponseFormat].
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	body, err := c.doRequest(ctx, rawURL)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeResponseFormat, err, "decode response from %s", redact(rawURL))
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", redact(rawURL))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", redact(rawURL))
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return fmt.Errorf("unexpected status %d %s", code, http.StatusText(code))
}

// redact strips the query so error messages stay short.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}
