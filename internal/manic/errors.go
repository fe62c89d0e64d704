package manic

import "errors"

// Remote query errors.
// Every error returned by the client wraps one of these sentinels together
// with the URL that was being fetched, so failures can be both reproduced
// by the operator and classified programmatically with errors.Is.
var (
	// ErrServerError is returned when the API responds with a 5xx status.
	// The server did not produce a usable response; retrying is up to the
	// caller (the reference behavior is to abort the run).
	ErrServerError = errors.New("measurement API internal server error")

	// ErrInvalidQuery is returned when the API responds with a 4xx status,
	// which indicates malformed or unacceptable query parameters.
	ErrInvalidQuery = errors.New("measurement API rejected query parameters")

	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("measurement API returned unexpected status")

	// ErrMalformedResponse is returned when the response body is not valid
	// JSON or an expected field (top-level "data", or "data.name" for ASN
	// lookups) is absent.
	ErrMalformedResponse = errors.New("measurement API returned malformed response")
)
