package outseta

import (
	"bytes"
	"fmt"
	"time"
)

// zonelessLayout is how the remote API writes most timestamps.
const zonelessLayout = "2006-01-02T15:04:05.999999999"

// Time is a timestamp that reads both RFC 3339 and the zone-less form the
// remote API emits. Zone-less values are taken as UTC. It always writes
// RFC 3339.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp %s is not a string", data)
	}

	raw := string(data[1 : len(data)-1])
	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		t.Time = parsed

		return nil
	}

	parsed, err = time.ParseInLocation(zonelessLayout, raw, time.UTC)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}

	t.Time = parsed

	return nil
}

// MarshalYAML writes the RFC 3339 form, or null for the zero time.
func (t Time) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.Format(time.RFC3339Nano), nil
}
