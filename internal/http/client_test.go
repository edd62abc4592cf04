package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	outsetahttp "github.com/hamadhassan3/outseta-client-sub001/internal/http"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/crm/accounts", request.URL.Path)
			assert.Equal(t, "limit=5", request.URL.RawQuery)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Outseta key:secret", request.Header.Get("Authorization"))
			assert.Equal(t, "outseta-go-client/1.0", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"Uid": "acc-1", "Name": "Acme"})
		}))
		defer server.Close()

		client := outsetahttp.NewClient()

		resp, err := client.Do(context.Background(), http.MethodGet, server.URL+"/api/v1/crm/accounts?limit=5",
			map[string]string{"Authorization": "Outseta key:secret"}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", result["Uid"])
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"Email":"jane@example.com"}`, string(body))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := outsetahttp.NewClient()

		resp, err := client.Do(context.Background(), http.MethodPost, server.URL+"/crm/people",
			map[string]string{"Content-Type": "application/json"}, []byte(`{"Email":"jane@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error status is returned, not interpreted", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)

			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte(`{"Message":"down"}`))
		}))
		defer server.Close()

		client := outsetahttp.NewClient()

		resp, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.JSONEq(t, `{"Message":"down"}`, string(resp.Body))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("custom user agent and request id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-app/2.0", request.Header.Get("User-Agent"))
			assert.Len(t, request.Header.Get("X-Request-Id"), 36)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := outsetahttp.NewClient(outsetahttp.WithUserAgent("my-app/2.0"), outsetahttp.WithRequestIDs(true))

		_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
		require.NoError(t, err)
	})

	t.Run("caller user agent wins", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "caller/1", request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("X-Request-Id"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := outsetahttp.NewClient()

		_, err := client.Do(context.Background(), http.MethodGet, server.URL, map[string]string{"User-Agent": "caller/1"}, nil)
		require.NoError(t, err)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := outsetahttp.NewClient(outsetahttp.WithLogger(logger), outsetahttp.WithDebug(true))

		_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("no logging without debug", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := outsetahttp.NewClient(outsetahttp.WithLogger(logger))

		_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})
}

func TestClient_DoErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused is a connectivity error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		_, err := outsetahttp.NewClient().Do(context.Background(), http.MethodGet, endpoint, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrConnectivity)
	})

	t.Run("unknown host is a connectivity error", func(t *testing.T) {
		t.Parallel()

		_, err := outsetahttp.NewClient().Do(context.Background(), http.MethodGet, "http://outseta.invalid/api", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrConnectivity)
	})

	t.Run("deadline is a connectivity error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			<-request.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := outsetahttp.NewClient().Do(ctx, http.MethodGet, server.URL, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrConnectivity)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("client timeout is a connectivity error", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := outsetahttp.NewClient(outsetahttp.WithTimeout(50 * time.Millisecond))

		_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrConnectivity)
	})

	t.Run("malformed response is an invalid response", func(t *testing.T) {
		t.Parallel()

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		defer func() { _ = listener.Close() }()

		go func() {
			conn, acceptErr := listener.Accept()
			if acceptErr != nil {
				return
			}

			defer func() { _ = conn.Close() }()

			buf := make([]byte, 1024)
			_, _ = conn.Read(buf)
			_, _ = conn.Write([]byte("this is not http\r\n\r\n"))
		}()

		_, err = outsetahttp.NewClient().Do(context.Background(), http.MethodGet, "http://"+listener.Addr().String()+"/", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrInvalidResponse)
	})

	t.Run("bad URL is an invalid argument", func(t *testing.T) {
		t.Parallel()

		_, err := outsetahttp.NewClient().Do(context.Background(), http.MethodGet, "://nope", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, outseta.ErrInvalidArgument)
	})
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	var used bool

	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			used = true

			return &http.Response{
				StatusCode: http.StatusAccepted,
				Header:     http.Header{},
				Body:       http.NoBody,
				Request:    req,
			}, nil
		}),
	}

	resp, err := outsetahttp.NewClient(outsetahttp.WithHTTPClient(httpClient)).Do(context.Background(), http.MethodGet, "https://acme.outseta.com/api/v1/profile", nil, nil)
	require.NoError(t, err)
	assert.True(t, used)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
