package errors

import (
	"context"
	stderrors "errors"
	"net"
	"os"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

// transientStatus is the set of HTTP status codes for which an immediate
// retry has a reasonable chance of succeeding.
var transientStatus = map[int]bool{
	408: true, // Request Timeout
	429: true, // Too Many Requests
	500: true, // Internal Server Error
	502: true, // Bad Gateway
	503: true, // Service Unavailable
	504: true, // Gateway Timeout
}

// transientErrnos is the set of transient I/O conditions. EWOULDBLOCK is
// covered by EAGAIN, which shares its value on every supported platform.
var transientErrnos = map[syscall.Errno]bool{
	syscall.EAGAIN:       true,
	syscall.ETIMEDOUT:    true,
	syscall.EINTR:        true,
	syscall.ECONNRESET:   true,
	syscall.ECONNABORTED: true,
	syscall.ENOTCONN:     true,
	syscall.ECONNREFUSED: true,
	syscall.EADDRINUSE:   true,
	syscall.EDEADLK:      true,
	syscall.EHOSTUNREACH: true,
	syscall.ENETDOWN:     true,
	syscall.ENETUNREACH:  true,
	syscall.EBUSY:        true,
}

// IsTransient reports whether an immediate retry of the failed operation
// has a reasonable chance of succeeding without corrective action.
//
// Transience is not a property of the kind alone: HTTP failures consult the
// captured status code, I/O failures the underlying I/O condition, and
// database failures both the driver's own error categories and the I/O
// conditions they may wrap. The not-ready sentinel is always transient;
// every other kind never is.
func (e *Error) IsTransient() bool {
	switch e.kind {
	case KindNotReady:
		return true
	case KindHTTP:
		return transientStatus[e.status]
	case KindIO:
		return transientIO(e.err)
	case KindDB:
		return transientDB(e.err)
	default:
		return false
	}
}

// IsTransient reports whether err carries a transient taxonomy error.
func IsTransient(err error) bool {
	e, ok := AsError(err)
	return ok && e.IsTransient()
}

func transientIO(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return transientErrnos[errno]
	}
	if stderrors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func transientDB(err error) bool {
	if err == nil {
		return false
	}
	// The server processed the statement and reported an error: the
	// connection is healthy and a retry may succeed (serialization
	// failures, lock timeouts and the like).
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return true
	}
	// Pool closed or pool acquire timed out. pgxpool surfaces puddle's
	// sentinel directly.
	if stderrors.Is(err, puddle.ErrClosedPool) || stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	return transientIO(err)
}
