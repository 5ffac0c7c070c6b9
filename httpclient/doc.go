// Package httpclient provides a small JSON-focused HTTP client whose
// failures surface as unified taxonomy errors.
//
// The one nontrivial piece is DecodeResponse: given a completed HTTP
// response it either decodes the body as the caller's expected type, or
// maps the failure body to the most specific taxonomy member available —
// a structured remote error when the body matches a known schema, an
// opaque JSON error (with lazy message extraction) when it does not, and a
// bare status-labeled error when the body cannot be read at all.
//
//	client := httpclient.New(httpclient.WithBaseURL("https://api.example.com"))
//	user, err := httpclient.GetJSON[User](ctx, client, "/users/123")
//	if errors.IsTransient(err) {
//	    // retry is worthwhile
//	}
package httpclient
