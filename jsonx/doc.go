// Package jsonx provides best-effort message extraction from arbitrary
// JSON error payloads.
//
// Third-party services report failures in wildly inconsistent JSON shapes.
// Value wraps a decoded payload of unknown shape and ExtractMessage walks a
// fixed priority list of conventional error field names to find the most
// plausible human-readable message. Extraction never fails: in the worst
// case the whole payload is returned pretty-printed.
//
//	v, _ := jsonx.Parse([]byte(`{"error": {"message": "quota exceeded"}}`))
//	msg := v.ExtractMessage() // "quota exceeded"
package jsonx
