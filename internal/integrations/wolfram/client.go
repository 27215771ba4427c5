package wolfram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Short Answers API base. The service speaks plain text only.
const defaultBaseURL = "http://api.wolframalpha.com/v1"

// Source yields the Wolfram Alpha app id used to authenticate requests.
type Source interface {
	AppID(ctx context.Context) (string, error)
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("wolfram: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client is a focused client for the Short Answers endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	appIDs     Source

	idOnce sync.Once
	appID  string
	idErr  error
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a Client backed by the given app id Source. The app id
// is resolved on the first call to Result and reused for the lifetime of
// the process.
func NewClient(src Source, opts ...Option) (*Client, error) {
	if src == nil {
		return nil, errors.New("wolfram: app id source must not be nil")
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		appIDs:     src,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) resolveAppID(ctx context.Context) (string, error) {
	c.idOnce.Do(func() {
		c.appID, c.idErr = fetchAppID(ctx, c.appIDs)
	})
	return c.appID, c.idErr
}

func resultURL(baseURL, appID, query string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	v := url.Values{}
	v.Set("appid", appID)
	v.Set("i", query)
	return base + "/result?" + v.Encode()
}

// Result performs a single blocking GET against the Short Answers endpoint
// and returns the trimmed plain-text answer. Non-2xx responses come back as
// *HTTPStatusError; transport failures are wrapped and returned as-is.
func (c *Client) Result(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("wolfram: query must not be empty")
	}

	appID, err := c.resolveAppID(ctx)
	if err != nil {
		return "", err
	}

	u := resultURL(c.baseURL, appID, query)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if reqErr != nil {
		return "", fmt.Errorf("wolfram: create request: %w", reqErr)
	}

	res, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", fmt.Errorf("wolfram: request failed: %w", doErr)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        u,
			Body:       strings.TrimSpace(string(buf)),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("wolfram: read response body: %w", err)
	}
	return strings.TrimSpace(string(buf)), nil
}

func fetchAppID(ctx context.Context, src Source) (string, error) {
	id, err := src.AppID(ctx)
	if err != nil {
		return "", fmt.Errorf("wolfram: resolve app id: %w", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("wolfram: app id is empty")
	}
	return id, nil
}
