package outseta_test

import (
	"testing"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/stretchr/testify/assert"
)

func TestHeaders_SetCanonicalizesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	headers := outseta.NewHeaders()
	headers.Set("accept", "application/json")
	headers.Set("x-trace", "1")
	headers.Set("ACCEPT", "text/plain")

	assert.Equal(t, []string{"Accept", "X-Trace"}, headers.Names())

	value, ok := headers.Get("Accept")
	assert.True(t, ok)
	assert.Equal(t, "text/plain", value)
	assert.Equal(t, 2, headers.Len())
}

func TestHeaders_Del(t *testing.T) {
	t.Parallel()

	headers := outseta.NewHeaders()
	headers.Set("A", "1")
	headers.Set("B", "2")
	headers.Set("C", "3")

	headers.Del("b")
	headers.Del("missing")

	assert.Equal(t, []string{"A", "C"}, headers.Names())
	assert.False(t, headers.Has("B"))
}

func TestHeaders_MergeDoesNotModifyReceiver(t *testing.T) {
	t.Parallel()

	headers := outseta.NewHeaders()
	headers.Set("Accept", "application/json")

	merged := headers.Merge(map[string]string{"zeta": "z", "accept": "text/csv", "alpha": "a"})

	assert.Equal(t, []string{"Accept", "Alpha", "Zeta"}, merged.Names())
	assert.Equal(t, map[string]string{"Accept": "text/csv", "Alpha": "a", "Zeta": "z"}, merged.Map())

	value, _ := headers.Get("Accept")
	assert.Equal(t, "application/json", value)
	assert.Equal(t, 1, headers.Len())
}

func TestHeaders_NilSafe(t *testing.T) {
	t.Parallel()

	var headers *outseta.Headers

	assert.Equal(t, 0, headers.Len())
	assert.False(t, headers.Has("Accept"))
	assert.Empty(t, headers.Map())
	assert.Equal(t, 0, headers.Clone().Len())
}
