// Package errors unifies the failure domains of external dependencies
// (database driver, SSH/SFTP transport, remote Graph API, codecs, URL
// parsing, I/O, HTTP exchanges) behind a single error taxonomy.
//
// Every external failure maps to exactly one Kind via a From* converter.
// The original error is preserved as the Unwrap cause, and classification
// queries decide what a caller should do with it:
//
//   - IsTransient: an immediate retry has a reasonable chance of succeeding
//   - IsNotReady: the resource exists but is not yet available (always
//     retry-eligible)
//   - IsAuth: credentials were rejected
//
// HTTP failure bodies of unknown shape are carried raw and rendered through
// the jsonx extractor only when a display string is actually requested.
//
//	rows, err := pool.Query(ctx, q)
//	if err != nil {
//	    return errors.FromDB(err)
//	}
//
//	if errors.IsTransient(err) {
//	    // schedule a retry; backoff policy is the caller's concern
//	}
package errors
