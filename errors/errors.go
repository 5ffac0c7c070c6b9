package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/docpile/errkit/jsonx"
	"github.com/docpile/errkit/remote"
)

// Error is the unified error type. Exactly one payload slot is populated,
// determined by the kind; the constructors enforce this, which is what lets
// the classification predicates be exhaustive switches on the kind.
//
// Values are immutable after construction and safe for concurrent use.
type Error struct {
	kind   Kind
	err    error        // wrapped external error (pass-through kinds)
	msg    string       // KindCustom text
	status int          // KindHTTP captured status code (0 = none)
	body   *jsonx.Value // KindOpaque raw JSON payload
}

// sentinel display messages. Sentinels carry no payload.
const (
	authMessage       = "An invalid username or password was provided. Please try again."
	permissionMessage = "Permission to access the requested resource was denied."
	inUseMessage      = "The requested resource is currently in use."
	notReadyMessage   = "The requested resource is not ready yet. Try again shortly."
)

// Custom constructs the free-text fallback error. The message is returned
// verbatim by Error.
func Custom(msg string) *Error {
	return &Error{kind: KindCustom, msg: msg}
}

// Customf constructs a free-text fallback error from a format string.
func Customf(format string, args ...any) *Error {
	return &Error{kind: KindCustom, msg: fmt.Sprintf(format, args...)}
}

// Auth returns the authentication-failure sentinel.
func Auth() *Error {
	return &Error{kind: KindAuth}
}

// Permission returns the permission-denied sentinel.
func Permission() *Error {
	return &Error{kind: KindPermission}
}

// InUse returns the resource-in-use sentinel.
func InUse() *Error {
	return &Error{kind: KindInUse}
}

// NotReady returns the not-ready sentinel. Callers use it to signal that a
// resource exists but is not yet available; it is always transient.
func NotReady() *Error {
	return &Error{kind: KindNotReady}
}

// Kind returns the failure domain of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Status returns the captured HTTP status code for KindHTTP errors, 0
// otherwise (or when the request never completed).
func (e *Error) Status() int {
	return e.status
}

// Body returns the raw JSON payload for KindOpaque errors, nil otherwise.
func (e *Error) Body() *jsonx.Value {
	return e.body
}

// Unwrap returns the wrapped external error. Sentinels and custom errors
// have no cause and return nil.
func (e *Error) Unwrap() error {
	if e.err != nil {
		return e.err
	}
	if e.body != nil {
		return e.body
	}
	return nil
}

// Error returns the display string. It never fails: the opaque kind runs
// the jsonx extractor over the raw body, custom errors return their message
// verbatim, and sentinels return a fixed message.
func (e *Error) Error() string {
	switch e.kind {
	case KindCustom:
		return e.msg
	case KindAuth:
		return authMessage
	case KindPermission:
		return permissionMessage
	case KindInUse:
		return inUseMessage
	case KindNotReady:
		return notReadyMessage
	case KindOpaque:
		return e.body.ExtractMessage()
	case KindResponse:
		return fmt.Sprintf("request responded with an error: %v", e.err)
	case KindHTTP:
		if e.err != nil {
			return fmt.Sprintf("http request failed: %v", e.err)
		}
		return fmt.Sprintf("http request failed: HTTP %d %s", e.status, remote.StatusText(e.status))
	case KindDB:
		return fmt.Sprintf("database operation failed: %v", e.err)
	case KindSSH:
		return fmt.Sprintf("ssh transport error: %v", e.err)
	case KindSFTP:
		return fmt.Sprintf("sftp connection error: %v", e.err)
	case KindGraph:
		return fmt.Sprintf("graph request failed: %v", e.err)
	case KindJSON:
		return fmt.Sprintf("json parse error: %v", e.err)
	case KindZip:
		return fmt.Sprintf("zip archive error: %v", e.err)
	case KindBase64:
		return fmt.Sprintf("base64 decode error: %v", e.err)
	case KindImage:
		return fmt.Sprintf("image codec error: %v", e.err)
	case KindPDF:
		return fmt.Sprintf("pdf codec error: %v", e.err)
	case KindURL:
		return fmt.Sprintf("url parse error: %v", e.err)
	case KindIO:
		return fmt.Sprintf("io error: %v", e.err)
	case KindGRPC:
		return fmt.Sprintf("grpc call failed: %v", e.err)
	case KindTask:
		return fmt.Sprintf("background task failed: %v", e.err)
	default:
		return fmt.Sprintf("unclassified error: %v", e.err)
	}
}

// IsAuth reports whether the error is exactly the authentication sentinel.
func (e *Error) IsAuth() bool {
	return e.kind == KindAuth
}

// IsNotReady reports whether the error is exactly the not-ready sentinel.
func (e *Error) IsNotReady() bool {
	return e.kind == KindNotReady
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsAuth reports whether err carries the authentication sentinel.
func IsAuth(err error) bool {
	e, ok := AsError(err)
	return ok && e.IsAuth()
}

// IsNotReady reports whether err carries the not-ready sentinel.
func IsNotReady(err error) bool {
	e, ok := AsError(err)
	return ok && e.IsNotReady()
}
