package errors

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for recorded errors.
const (
	AttrErrorKind      = "error.kind"
	AttrErrorTransient = "error.transient"
)

// RecordSpan records err on an OpenTelemetry span, marking the span status
// as error. Taxonomy errors additionally carry their kind and transience as
// span attributes. A nil err or a non-recording span is a no-op.
func RecordSpan(span trace.Span, err error) {
	if err == nil || span == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if e, ok := AsError(err); ok {
		span.SetAttributes(
			attribute.String(AttrErrorKind, e.Kind().String()),
			attribute.Bool(AttrErrorTransient, e.IsTransient()),
		)
	}
}
