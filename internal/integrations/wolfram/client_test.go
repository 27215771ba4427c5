package wolfram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal Source stub for use within this package.
type fakeSource struct {
	id    string
	err   error
	calls int
}

func (f *fakeSource) AppID(context.Context) (string, error) {
	f.calls++
	return f.id, f.err
}

// ---------------------------------------------------------------------------
// resultURL helper
// ---------------------------------------------------------------------------

func TestResultURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"http://api.wolframalpha.com/v1", "http://api.wolframalpha.com/v1/result?"},
		{"http://api.wolframalpha.com/v1/", "http://api.wolframalpha.com/v1/result?"},
		{"http://localhost:8080", "http://localhost:8080/result?"},
		{"", "http://api.wolframalpha.com/v1/result?"},
	}
	for _, tc := range cases {
		got := resultURL(tc.base, "DEMO", "solve x = 1")
		require.Contains(t, got, tc.want, "base=%q", tc.base)

		u, err := url.Parse(got)
		require.NoError(t, err)
		require.Equal(t, "DEMO", u.Query().Get("appid"))
		require.Equal(t, "solve x = 1", u.Query().Get("i"))
	}
}

// ---------------------------------------------------------------------------
// NewClient
// ---------------------------------------------------------------------------

func TestNewClient_NilSource(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nil")
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(&fakeSource{id: "DEMO"})
	require.NoError(t, err)
	require.Equal(t, "http://api.wolframalpha.com/v1", c.baseURL)
	require.NotNil(t, c.httpClient)
}

func TestWithHTTPClient_NilKeepsDefault(t *testing.T) {
	c, err := NewClient(&fakeSource{id: "DEMO"}, WithHTTPClient(nil))
	require.NoError(t, err)
	require.NotNil(t, c.httpClient)
}

// ---------------------------------------------------------------------------
// Result
// ---------------------------------------------------------------------------

func TestResult_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/result", r.URL.Path)
		require.Equal(t, "DEMO-KEY", r.URL.Query().Get("appid"))
		require.Equal(t, "solve 1x^2 + -2x + 3 = 0", r.URL.Query().Get("i"))
		_, _ = w.Write([]byte(" x = 1 - i sqrt(2) or x = 1 + i sqrt(2) \n"))
	}))
	defer srv.Close()

	c, err := NewClient(&fakeSource{id: "DEMO-KEY"}, WithBaseURL(srv.URL))
	require.NoError(t, err)

	answer, err := c.Result(context.Background(), "solve 1x^2 + -2x + 3 = 0")
	require.NoError(t, err)
	require.Equal(t, "x = 1 - i sqrt(2) or x = 1 + i sqrt(2)", answer)
}

func TestResult_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
		_, _ = w.Write([]byte("Wolfram|Alpha did not understand your input"))
	}))
	defer srv.Close()

	c, err := NewClient(&fakeSource{id: "DEMO-KEY"}, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Result(context.Background(), "solve gibberish")
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotImplemented, statusErr.StatusCode)
	require.Equal(t, "Wolfram|Alpha did not understand your input", statusErr.Body)
	require.Equal(t, http.StatusNotImplemented, statusErr.HTTPStatusCode())
}

func TestResult_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := NewClient(&fakeSource{id: "DEMO-KEY"}, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Result(context.Background(), "solve x = 1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")

	var statusErr *HTTPStatusError
	require.False(t, errors.As(err, &statusErr), "transport failures carry no status code")
}

func TestResult_EmptyQuery(t *testing.T) {
	c, err := NewClient(&fakeSource{id: "DEMO-KEY"})
	require.NoError(t, err)

	_, err = c.Result(context.Background(), "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

// ---------------------------------------------------------------------------
// resolveAppID — caching behaviour
// ---------------------------------------------------------------------------

func TestResolveAppID_FetchedOnce(t *testing.T) {
	src := &fakeSource{id: " DEMO-KEY "}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("42"))
	}))
	defer srv.Close()

	c, err := NewClient(src, WithBaseURL(srv.URL))
	require.NoError(t, err)

	id, err := c.resolveAppID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "DEMO-KEY", id)
	require.Equal(t, 1, src.calls)

	_, _ = c.Result(context.Background(), "solve x = 1")
	_, _ = c.Result(context.Background(), "solve x = 2")
	require.Equal(t, 1, src.calls, "app id must only be resolved once per process lifetime")
}

func TestResolveAppID_EmptyID(t *testing.T) {
	c, err := NewClient(&fakeSource{id: "  "})
	require.NoError(t, err)

	_, err = c.Result(context.Background(), "solve x = 1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}
