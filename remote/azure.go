package remote

import (
	"fmt"
	"strings"
)

// Error is the Azure-style structured error body:
// {"error": {"code", "message", "target", "details": [...], "innererror": {...}}}.
// The details list and the innererror chain are preserved verbatim, never
// flattened.
type Error struct {
	Detail ErrorDetail `json:"error"`
}

// ErrorDetail is the payload of an Azure-style error. Details may nest
// further Error values and InnerError chains recursively; nesting depth is
// determined by the service, not by this package.
type ErrorDetail struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Target     string      `json:"target,omitempty"`
	Details    []Error     `json:"details,omitempty"`
	InnerError *InnerError `json:"innererror,omitempty"`
}

// InnerError is a recursive chain of increasingly specific error
// information. All fields are optional.
type InnerError struct {
	Code       string      `json:"code,omitempty"`
	Message    string      `json:"message,omitempty"`
	InnerError *InnerError `json:"innererror,omitempty"`
}

// Warning is a non-fatal condition reported alongside an Azure operation
// result.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Target  string `json:"target,omitempty"`
}

// maxChainDepth caps formatting and unwrapping walks over the innererror
// chain. The chain is service-controlled data and must not be able to
// exhaust the stack.
const maxChainDepth = 64

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Detail.Error()
}

// Unwrap exposes the detail payload for chained inspection.
func (e *Error) Unwrap() error {
	return &e.Detail
}

// Error implements the error interface.
func (d *ErrorDetail) Error() string {
	return fmt.Sprintf("%s - %s", d.Code, d.Message)
}

// Unwrap returns the innererror chain, if any.
func (d *ErrorDetail) Unwrap() error {
	if d.InnerError == nil {
		return nil
	}
	return d.InnerError
}

// Error implements the error interface.
func (i *InnerError) Error() string {
	return fmt.Sprintf("%s - %s", i.Code, i.Message)
}

// Unwrap returns the next link of the chain, if any.
func (i *InnerError) Unwrap() error {
	if i.InnerError == nil {
		return nil
	}
	return i.InnerError
}

// Chain renders the full code/message chain of the error, walking the
// innererror links from outermost to innermost.
func (d *ErrorDetail) Chain() string {
	var sb strings.Builder
	sb.WriteString(d.Error())
	inner := d.InnerError
	for depth := 0; inner != nil && depth < maxChainDepth; depth++ {
		sb.WriteString(": ")
		sb.WriteString(inner.Error())
		inner = inner.InnerError
	}
	return sb.String()
}
