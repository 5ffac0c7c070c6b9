package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/docpile/errkit/errors"
	"github.com/docpile/errkit/jsonx"
	"github.com/docpile/errkit/remote"
)

// maxErrorBody caps how much of a failure body is read. Failure bodies are
// service-controlled data.
const maxErrorBody = 1 << 20

// DecodeResponse consumes a completed HTTP response. A success status
// decodes the body as T. A failure status reads the body once and maps it
// to the most specific taxonomy member:
//
//  1. the body matches the Azure-style structured schema → structured
//     remote error
//  2. the body is any other JSON value → opaque error carrying the raw
//     value, message extraction deferred until displayed
//  3. the body cannot be read, is empty, or is not JSON → HTTP error
//     labeled with the status category
//
// The response body is always closed.
func DecodeResponse[T any](resp *http.Response) (T, error) {
	var zero T
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data T
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return zero, errors.FromJSON(err)
		}
		return data, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return zero, errors.FromHTTP(resp.StatusCode, nil)
	}

	// A schema match requires both code and message: a partial shape is
	// better served by the opaque path, which extracts whatever message
	// text is present.
	var structured remote.Error
	if err := json.Unmarshal(body, &structured); err == nil &&
		structured.Detail.Code != "" && structured.Detail.Message != "" {
		return zero, errors.FromResponse(&structured)
	}

	value, err := jsonx.Parse(body)
	if err != nil {
		// Not JSON at all; keep the status label as the message.
		return zero, errors.FromHTTP(resp.StatusCode, nil)
	}
	return zero, errors.FromBody(value)
}

// GetJSON performs a GET request and decodes the JSON response into T.
func GetJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeResponse[T](resp)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into T.
func PostJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeResponse[T](resp)
}
