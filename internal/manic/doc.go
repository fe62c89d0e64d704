// Package manic provides a client for the MANIC measurement API.
//
// MANIC (Measurement and Analysis of Internet Congestion) exposes
// time-bounded congestion assertions between network pairs via the /asrt
// endpoint, and ASN metadata via the /asns endpoint. This package wraps
// both behind a Client with context-aware methods and typed errors.
//
// Design decision: The client returns errors rather than terminating the
// process on remote failures. HTTP status classes map to sentinel errors
// (ErrServerError, ErrInvalidQuery, ErrUnexpectedStatus) so that callers
// can use errors.Is to decide whether to abort the whole run or only the
// current network pair.
package manic
