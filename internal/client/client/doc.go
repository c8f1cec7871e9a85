// Package client talks to the contacts backend over JSON/HTTP.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): account
//     registration, sign-in, email verification, password reset and the
//     contact collection endpoints.
//  2. A concrete net/http implementation (see HTTPClient) that attaches the
//     stored access token to protected calls, tags every request with an
//     X-Request-ID and records Prometheus metrics.
//
// # Authorization
//
// Protected calls read the access token from a TokenSource right before the
// request is built. When no token is stored the request is never sent and
// the call fails with ErrUnauthenticated. There is no retry and no token
// refresh: a rejected token surfaces as ErrUnauthorized.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnauthenticated, ErrUnauthorized, ErrRequestFailed,
// ErrUnavailable. Non-2xx responses are returned as *RequestFailedError,
// which keeps the status code and body for logging.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every operation takes a
// context.Context and is additionally bounded by the configured timeout.
package client
