package outseta

import (
	"encoding/json"
	"strings"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// Serializer converts between typed values and their wire form.
//
// Implementations must ignore unknown fields and leave missing ones at
// their zero value. Tests substitute a stub that returns canned values.
type Serializer interface {
	Marshal(v any) (string, error)
	Unmarshal(text string, target any) error
}

// JSONSerializer is the default Serializer.
type JSONSerializer struct{}

// NewJSONSerializer creates the default JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

// Marshal implements Serializer.
func (s *JSONSerializer) Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", &Error{Kind: KindSerialization, Op: "marshal", Err: err}
	}

	return string(data), nil
}

// Unmarshal implements Serializer.
func (s *JSONSerializer) Unmarshal(text string, target any) error {
	if strings.TrimSpace(text) == "" {
		return &Error{Kind: KindParse, Op: "unmarshal", Err: constants.ErrEmptyPayload}
	}

	err := json.Unmarshal([]byte(text), target)
	if err != nil {
		return &Error{Kind: KindParse, Op: "unmarshal", Body: text, Err: err}
	}

	return nil
}

// ToWire serializes v with s.
func ToWire(s Serializer, v any) (string, error) {
	if s == nil {
		return "", missingSerializer("to wire")
	}

	text, err := s.Marshal(v)
	if err != nil {
		return "", asKind(err, KindSerialization, "to wire")
	}

	return text, nil
}

// FromWire deserializes text into a new T.
func FromWire[T any](s Serializer, text string) (*T, error) {
	if s == nil {
		return nil, missingSerializer("from wire")
	}

	var value T

	err := s.Unmarshal(text, &value)
	if err != nil {
		return nil, asKind(err, KindParse, "from wire")
	}

	return &value, nil
}

// FromWirePage deserializes a {metadata, items} envelope whose items are T.
func FromWirePage[T any](s Serializer, text string) (*ItemPage[T], error) {
	if s == nil {
		return nil, missingSerializer("from wire page")
	}

	page := &ItemPage[T]{}

	err := s.Unmarshal(text, page)
	if err != nil {
		return nil, asKind(err, KindParse, "from wire page")
	}

	if page.Items == nil {
		page.Items = []T{}
	}

	return page, nil
}

func missingSerializer(op string) error {
	return &Error{Kind: KindClientBuild, Op: op, Err: constants.ErrSerializerRequired}
}

// asKind keeps SDK errors as they are and tags foreign ones with kind.
func asKind(err error, kind ErrorKind, op string) error {
	if KindOf(err) != KindUnknown {
		return err
	}

	return &Error{Kind: kind, Op: op, Err: err}
}
