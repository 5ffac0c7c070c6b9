package errors

import (
	"github.com/rs/zerolog"
)

// MarshalZerologObject implements zerolog.LogObjectMarshaler so an Error
// can be logged structurally:
//
//	log.Warn().Object("error", e).Msg("operation failed")
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", e.kind.String())
	ev.Bool("transient", e.IsTransient())
	if e.status != 0 {
		ev.Int("status", e.status)
	}
	if cause := e.Unwrap(); cause != nil {
		ev.AnErr("cause", cause)
	}
}
