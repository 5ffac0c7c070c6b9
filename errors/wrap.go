package errors

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docpile/errkit/jsonx"
	"github.com/docpile/errkit/remote"
)

// The From* converters are total: every external error value maps to
// exactly one taxonomy member, always preserving the original as the
// Unwrap cause. A handful of converters recognize well-known conditions
// in their domain and map them to the matching sentinel instead.

// FromDB wraps a database driver failure.
func FromDB(err error) *Error {
	return &Error{kind: KindDB, err: err}
}

// FromSSH wraps an SSH transport failure. Rejected credentials map to the
// authentication sentinel.
func FromSSH(err error) *Error {
	var authErr *ssh.ServerAuthError
	if stderrors.As(err, &authErr) {
		return Auth()
	}
	// Client-side auth rejection surfaces only as a handshake error string.
	if err != nil && strings.Contains(err.Error(), "unable to authenticate") {
		return Auth()
	}
	return &Error{kind: KindSSH, err: err}
}

// FromSFTP wraps an SFTP client failure. A permission-denied status from
// the server maps to the permission sentinel.
func FromSFTP(err error) *Error {
	var se *sftp.StatusError
	if stderrors.As(err, &se) && se.FxCode() == sftp.ErrSSHFxPermissionDenied {
		return Permission()
	}
	return &Error{kind: KindSFTP, err: err}
}

// FromGraph wraps a transport-level Graph API client failure. A
// service-reported error body goes through FromGraphError instead.
func FromGraph(err error) *Error {
	return &Error{kind: KindGraph, err: err}
}

// FromJSON wraps a JSON encode/decode failure.
func FromJSON(err error) *Error {
	return &Error{kind: KindJSON, err: err}
}

// FromZip wraps a zip archive failure.
func FromZip(err error) *Error {
	return &Error{kind: KindZip, err: err}
}

// FromBase64 wraps a base64 decode failure.
func FromBase64(err error) *Error {
	return &Error{kind: KindBase64, err: err}
}

// FromImage wraps an image codec failure.
func FromImage(err error) *Error {
	return &Error{kind: KindImage, err: err}
}

// FromPDF wraps a PDF codec failure.
func FromPDF(err error) *Error {
	return &Error{kind: KindPDF, err: err}
}

// FromURL wraps a URL parse failure.
func FromURL(err error) *Error {
	return &Error{kind: KindURL, err: err}
}

// FromIO wraps a generic I/O failure.
func FromIO(err error) *Error {
	return &Error{kind: KindIO, err: err}
}

// FromHTTP wraps an HTTP exchange failure. status is the response status
// code, or 0 when the request never completed (connection error, timeout
// before any response). err may be nil when the failure is described by the
// status alone.
func FromHTTP(statusCode int, err error) *Error {
	return &Error{kind: KindHTTP, status: statusCode, err: err}
}

// FromGRPC wraps a gRPC call failure. Unauthenticated and PermissionDenied
// statuses map to the matching sentinels.
func FromGRPC(err error) *Error {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unauthenticated:
			return Auth()
		case codes.PermissionDenied:
			return Permission()
		}
	}
	return &Error{kind: KindGRPC, err: err}
}

// FromTask wraps a background task failure (a worker that returned an error
// or a recovered panic conveyed as one).
func FromTask(err error) *Error {
	return &Error{kind: KindTask, err: err}
}

// FromResponse wraps an Azure-style structured error body reported by a
// remote service.
func FromResponse(re *remote.Error) *Error {
	return &Error{kind: KindResponse, err: re}
}

// FromGraphError wraps a Graph-style structured error body reported by a
// remote service.
func FromGraphError(ge *remote.GraphError) *Error {
	return &Error{kind: KindResponse, err: ge}
}

// FromBody wraps a failure body of unrecognized JSON shape. The raw value
// is kept as-is; message extraction runs lazily when the display string is
// requested.
func FromBody(body *jsonx.Value) *Error {
	return &Error{kind: KindOpaque, body: body}
}

// GraphResult maps a decoded Graph response envelope to its value or to a
// taxonomy error. An envelope with neither value nor error populated is an
// undecodable response and maps to a custom error describing it.
func GraphResult[T any](resp remote.GraphResponse[T]) (T, error) {
	if resp.Err != nil {
		var zero T
		return zero, FromGraphError(resp.Err)
	}
	if resp.Value != nil {
		return *resp.Value, nil
	}
	var zero T
	return zero, Customf("could not decode either the value or the error of the response: %+v", resp)
}
