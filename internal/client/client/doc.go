// Package client contains client-side building blocks for BillBreak.
//
// # Overview
//
// The package provides:
//  1. The backend contract (Client, and its AuthAPI subset used by the
//     session store).
//  2. HTTPClient, a JSON/HTTP implementation. A RoundTripper reads the
//     bearer token from a TokenSource before every request and adds an
//     X-Request-ID. Requests time out after the configured duration and are
//     never retried.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers are returned as *APIError carrying the server's message.
// errors.Is maps them onto ErrUnauthorized (401, 403), ErrNotFound (404) and
// ErrUnavailable (502, 503, 504). Transport failures and timeouts also match
// ErrUnavailable; undecodable or incomplete 2xx bodies match
// ErrMalformedResponse. A 401 is flagged Retried and logged once.
package client
