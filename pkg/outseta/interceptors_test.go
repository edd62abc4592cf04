package outseta_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := outseta.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &outseta.Request{
		Method: http.MethodGet,
		Path:   "/crm/accounts",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
	assert.Equal(t, 2, chain.Len())
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	chain := outseta.NewInterceptorChain()
	expectedErr := errors.New("interceptor error")

	var called bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		return expectedErr
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		called = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &outseta.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := outseta.NewInterceptorChain()

	var statuses []int

	chain.AddResponseInterceptor(func(ctx context.Context, req *outseta.Request, resp *outseta.Response, err error) {
		statuses = append(statuses, resp.StatusCode)
	})

	chain.ExecuteResponseInterceptors(context.Background(), &outseta.Request{}, &outseta.Response{StatusCode: http.StatusCreated}, nil)

	assert.Equal(t, []int{http.StatusCreated}, statuses)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := outseta.NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()
	req := &outseta.Request{Method: http.MethodGet, Path: "/crm/people"}

	err := outseta.LoggingInterceptor(logger)(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, req.Metadata, "start_time")

	outseta.LoggingResponseInterceptor(logger)(ctx, req, &outseta.Response{StatusCode: http.StatusOK}, nil)
	outseta.LoggingResponseInterceptor(logger)(ctx, req, nil, errors.New("connection refused"))

	output := buf.String()
	assert.Contains(t, output, `"message":"API Request"`)
	assert.Contains(t, output, `"message":"API Response"`)
	assert.Contains(t, output, `"status_code":200`)
	assert.Contains(t, output, `"message":"API Response Error"`)
	assert.Contains(t, output, `"error":"connection refused"`)
	assert.Contains(t, output, `"path":"/crm/people"`)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := outseta.NewMetricsCollector()

	var changes []string

	collector.SetOnChange(func(endpoint string, metrics outseta.Metrics) {
		changes = append(changes, endpoint)
	})

	ctx := context.Background()
	requestInterceptor := outseta.MetricsRequestInterceptor(collector)
	responseInterceptor := outseta.MetricsResponseInterceptor(collector)

	for _, status := range []int{http.StatusOK, http.StatusNotFound} {
		req := &outseta.Request{Method: http.MethodGet, Path: "/crm/accounts"}

		require.NoError(t, requestInterceptor(ctx, req))
		time.Sleep(time.Millisecond)
		responseInterceptor(ctx, req, &outseta.Response{StatusCode: status}, nil)
	}

	req := &outseta.Request{Method: http.MethodPost, Path: "/tokens"}
	responseInterceptor(ctx, req, nil, errors.New("timeout"))

	metrics, ok := collector.GetMetrics("GET /crm/accounts")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)
	assert.False(t, metrics.LastRequestTime.IsZero())

	metrics, ok = collector.GetMetrics("POST /tokens")
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics.TotalErrors)

	_, ok = collector.GetMetrics("DELETE /crm/accounts")
	assert.False(t, ok)

	assert.Equal(t, []string{"GET /crm/accounts", "GET /crm/accounts", "POST /tokens"}, changes)
}
