package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/hamadhassan3/outseta-client-sub001/internal/http"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// NewTestBase creates a base client for baseURL authenticated with an API key.
func NewTestBase(t *testing.T, baseURL string) *outseta.Client {
	t.Helper()

	base, err := outseta.NewClientBuilder(outseta.GenericFamily).
		WithBaseURL(baseURL).
		WithAPIKey("test-key", "test-secret").
		WithSerializer(outseta.NewJSONSerializer()).
		WithTransport(internalhttp.NewClient()).
		Build()
	require.NoError(t, err)

	return base
}

// countingTransport counts calls and answers every one with an empty object.
type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) Do(ctx context.Context, method, fullURL string, headers map[string]string, body []byte) (*outseta.Response, error) {
	c.calls.Add(1)

	return &outseta.Response{StatusCode: http.StatusOK, Body: []byte("{}")}, nil
}

// NewCountingBase creates a base client whose transport only counts calls.
func NewCountingBase(t *testing.T) (*outseta.Client, *countingTransport) {
	t.Helper()

	transport := &countingTransport{}

	base, err := outseta.NewClientBuilder(outseta.GenericFamily).
		WithBaseURL("https://acme.outseta.com/api/v1").
		WithAPIKey("test-key", "test-secret").
		WithSerializer(outseta.NewJSONSerializer()).
		WithTransport(transport).
		Build()
	require.NoError(t, err)

	return base, transport
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	UID          string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantKind     outseta.ErrorKind
	Check        func(t *testing.T, result *TResponse)
}

// RunGetTests runs a series of get operation tests against a local server.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*outseta.Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, "Outseta test-key:test-secret", request.Header.Get("Authorization"))

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			result, err := getFunc(NewTestBase(t, server.URL))(context.Background(), testCase.UID)

			if testCase.WantKind != outseta.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, outseta.KindOf(err))
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// TestWriteOperation represents a create or update test case.
type TestWriteOperation[TResource any] struct {
	Name         string
	UID          string
	Request      *TResource
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantKind     outseta.ErrorKind
	Check        func(t *testing.T, sent map[string]interface{}, result *TResource)
}

// RunWriteTests runs create or update tests, depending on method.
func RunWriteTests[TResource any](
	t *testing.T,
	method string,
	tests []TestWriteOperation[TResource],
	writeFunc func(*outseta.Client) func(context.Context, string, *TResource) (*TResource, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var sent map[string]interface{}

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, method, request.Method)
				assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

				assert.NoError(t, json.NewDecoder(request.Body).Decode(&sent))

				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			result, err := writeFunc(NewTestBase(t, server.URL))(context.Background(), testCase.UID, testCase.Request)

			if testCase.WantKind != outseta.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, outseta.KindOf(err))
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, sent, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	UID          string
	ExpectedPath string
	StatusCode   int
	WantKind     outseta.ErrorKind
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*outseta.Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, http.MethodDelete, request.Method)
				writer.WriteHeader(testCase.StatusCode)
			}))
			defer server.Close()

			err := deleteFunc(NewTestBase(t, server.URL))(context.Background(), testCase.UID)

			if testCase.WantKind != outseta.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, outseta.KindOf(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

// newPageServer serves total items at path, paged by the offset and limit
// query parameters, with the total in the metadata. check, if set, sees
// every request's query.
func newPageServer(t *testing.T, path string, total int, check func(t *testing.T, query map[string]string)) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, path, request.URL.Path)

		query := make(map[string]string)
		for key := range request.URL.Query() {
			query[key] = request.URL.Query().Get(key)
		}

		if check != nil {
			check(t, query)
		}

		offset, _ := strconv.Atoi(query["offset"])

		limit, err := strconv.Atoi(query["limit"])
		if err != nil || limit <= 0 {
			limit = total
		}

		start := min(offset*limit, total)
		end := min(start+limit, total)

		items := make([]map[string]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, map[string]interface{}{"Uid": fmt.Sprintf("item-%02d", i)})
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"metadata": map[string]int{"limit": limit, "offset": offset, "total": total},
			"items":    items,
		})
	}))
}
