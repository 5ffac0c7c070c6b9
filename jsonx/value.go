package jsonx

import (
	"encoding/json"
)

// errorFields are the candidate field names checked by ExtractMessage, in
// priority order. The first field holding a plain string wins. Do not
// reorder: the order is observable for payloads containing more than one
// candidate field.
var errorFields = [...]string{
	"error",
	"err",
	"message",
	"detail",
	"details",
	"description",
	"errorMessage",
	"error_message",
	"reason",
	"title",
}

// maxExtractDepth bounds recursion into nested objects. Payload nesting is
// caller-data-determined, so the walk is capped rather than trusted.
const maxExtractDepth = 32

// Value wraps a decoded JSON value of unknown shape. It implements error so
// it can serve directly as the cause of a wrapped failure.
type Value struct {
	v any
}

// Parse decodes raw JSON bytes into a Value. The returned error is non-nil
// only when the input is not valid JSON.
func Parse(data []byte) (*Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &Value{v: v}, nil
}

// Wrap wraps an already-decoded JSON value (the result of unmarshaling into
// an interface, or any JSON-serializable Go value).
func Wrap(v any) *Value {
	return &Value{v: v}
}

// Interface returns the underlying decoded value.
func (v *Value) Interface() any {
	return v.v
}

// Error returns the compact JSON serialization of the value.
func (v *Value) Error() string {
	b, err := json.Marshal(v.v)
	if err != nil {
		return "Unknown error format"
	}
	return string(b)
}

// ExtractMessage returns the most plausible human-readable error message
// contained in the value.
//
// Objects are scanned for the candidate error fields in priority order; the
// first field holding a plain string is returned. A candidate field holding
// a nested object is recursed into with the same algorithm. When no
// candidate yields a message the whole object is returned pretty-printed.
// A bare JSON string is returned verbatim; any other JSON type is returned
// as its plain serialization. ExtractMessage never fails.
func (v *Value) ExtractMessage() string {
	return extract(v.v, maxExtractDepth)
}

func extract(v any, depth int) string {
	switch val := v.(type) {
	case map[string]any:
		if depth > 0 {
			for _, field := range errorFields {
				fv, ok := val[field]
				if !ok {
					continue
				}
				switch nested := fv.(type) {
				case string:
					return nested
				case map[string]any:
					if msg := extract(nested, depth-1); msg != "" {
						return msg
					}
				}
			}
		}
		pretty, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return "Unknown error format"
		}
		return string(pretty)
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "Unknown error format"
		}
		return string(b)
	}
}
