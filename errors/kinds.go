package errors

// Kind identifies the failure domain of an Error. The set is closed: every
// external failure maps to exactly one Kind.
type Kind int

const (
	// KindCustom is the free-text fallback for failures with no structured
	// external error to wrap.
	KindCustom Kind = iota
	// KindDB indicates a database driver failure.
	KindDB
	// KindSSH indicates an SSH transport failure.
	KindSSH
	// KindSFTP indicates an SFTP client failure.
	KindSFTP
	// KindGraph indicates a Graph API client failure (transport level, as
	// opposed to a service-reported error body).
	KindGraph
	// KindJSON indicates a JSON encode/decode failure.
	KindJSON
	// KindResponse indicates a remote service reported a structured error
	// body (Graph or Azure schema).
	KindResponse
	// KindOpaque indicates a remote service returned an error body of
	// unrecognized JSON shape; the raw value is kept for lazy extraction.
	KindOpaque
	// KindZip indicates a zip archive failure.
	KindZip
	// KindBase64 indicates a base64 decode failure.
	KindBase64
	// KindImage indicates an image codec failure.
	KindImage
	// KindPDF indicates a PDF codec failure.
	KindPDF
	// KindURL indicates a URL parse failure.
	KindURL
	// KindIO indicates a generic I/O failure.
	KindIO
	// KindHTTP indicates an HTTP exchange failure: either the request never
	// completed (no status) or it completed with a failure status and an
	// unusable body.
	KindHTTP
	// KindGRPC indicates a gRPC call failure.
	KindGRPC
	// KindTask indicates a background task failed or panicked.
	KindTask
	// KindAuth is the authentication-failure sentinel.
	KindAuth
	// KindPermission is the permission-denied sentinel.
	KindPermission
	// KindInUse is the resource-in-use conflict sentinel.
	KindInUse
	// KindNotReady is the eventual-consistency sentinel: the resource
	// exists but is not yet available. Always transient.
	KindNotReady
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindDB:
		return "db"
	case KindSSH:
		return "ssh"
	case KindSFTP:
		return "sftp"
	case KindGraph:
		return "graph"
	case KindJSON:
		return "json"
	case KindResponse:
		return "response"
	case KindOpaque:
		return "opaque"
	case KindZip:
		return "zip"
	case KindBase64:
		return "base64"
	case KindImage:
		return "image"
	case KindPDF:
		return "pdf"
	case KindURL:
		return "url"
	case KindIO:
		return "io"
	case KindHTTP:
		return "http"
	case KindGRPC:
		return "grpc"
	case KindTask:
		return "task"
	case KindAuth:
		return "auth"
	case KindPermission:
		return "permission"
	case KindInUse:
		return "in_use"
	case KindNotReady:
		return "not_ready"
	default:
		return "unknown"
	}
}
