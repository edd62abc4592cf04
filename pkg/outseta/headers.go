package outseta

import (
	"maps"
	"net/http"
	"slices"
)

// Headers is an insertion-ordered header map. Names are canonicalized, so
// "content-type" and "Content-Type" are the same entry and the last write
// wins.
type Headers struct {
	names  []string
	values map[string]string
}

// NewHeaders creates an empty header map.
func NewHeaders() *Headers {
	return &Headers{values: make(map[string]string)}
}

// Set sets name to value, keeping the original position of an existing entry.
func (h *Headers) Set(name, value string) {
	key := http.CanonicalHeaderKey(name)

	if h.values == nil {
		h.values = make(map[string]string)
	}

	if _, ok := h.values[key]; !ok {
		h.names = append(h.names, key)
	}

	h.values[key] = value
}

// Get returns the value of name.
func (h *Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}

	value, ok := h.values[http.CanonicalHeaderKey(name)]

	return value, ok
}

// Has reports whether name is set.
func (h *Headers) Has(name string) bool {
	_, ok := h.Get(name)

	return ok
}

// Del removes name.
func (h *Headers) Del(name string) {
	key := http.CanonicalHeaderKey(name)
	if _, ok := h.values[key]; !ok {
		return
	}

	delete(h.values, key)

	for i, existing := range h.names {
		if existing == key {
			h.names = append(h.names[:i:i], h.names[i+1:]...)

			break
		}
	}
}

// Len returns the number of entries.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}

	return len(h.names)
}

// Names returns the header names in insertion order.
func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}

	return append([]string(nil), h.names...)
}

// Map returns the headers as a plain map.
func (h *Headers) Map() map[string]string {
	out := make(map[string]string, h.Len())
	if h == nil {
		return out
	}

	for _, name := range h.names {
		out[name] = h.values[name]
	}

	return out
}

// Clone returns an independent copy.
func (h *Headers) Clone() *Headers {
	out := NewHeaders()
	if h == nil {
		return out
	}

	for _, name := range h.names {
		out.Set(name, h.values[name])
	}

	return out
}

// Merge sets every entry of overrides on a copy of h and returns the copy.
// New names are appended in sorted order.
func (h *Headers) Merge(overrides map[string]string) *Headers {
	out := h.Clone()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		out.Set(name, overrides[name])
	}

	return out
}
