package remote

import (
	"encoding/json"
	"fmt"
)

// GraphError is the error envelope returned by Microsoft Graph:
// {"error": {"code": ..., "message": ..., "innerError": ...}}.
type GraphError struct {
	Err GraphErrorDetail `json:"error"`
}

// GraphErrorDetail carries the code and message of a Graph error. InnerError
// is kept raw: Graph populates it with request-id/date diagnostics whose
// shape is not stable across endpoints.
type GraphErrorDetail struct {
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	InnerError json.RawMessage `json:"innerError,omitempty"`
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("%s - %s", e.Err.Code, e.Err.Message)
}

// GraphResponse is the generic Graph response envelope: exactly one of
// Value or Err is expected to be populated.
type GraphResponse[T any] struct {
	Value *T          `json:"value,omitempty"`
	Err   *GraphError `json:"error,omitempty"`
}
