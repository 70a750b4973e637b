// Package requestid provides net/http middleware that assigns an identifier to
// every inbound request, exposes it to handler code through the request
// context and echoes it back in a response header.
//
// # Overview
//
// The middleware is built once and shared across requests:
//
//	mw := requestid.MustNew(16).HeaderName("X-Request-ID")
//	http.ListenAndServe(":8080", mw.Handler(mux))
//
// For every request it
//
//   - reuses the identifier an outer layer already stored in the request
//     scope, or generates a new one with the configured Generator,
//   - marks it as the current identifier of the request (see Current),
//   - appends it to the response under the configured header name,
//   - clears the current identifier once the wrapped handler returns, panics
//     or gives up after cancellation.
//
// # Generators
//
// The default generator renders a random UUIDv4 in canonical form and keeps
// the first N characters. WithFullUUID, WithSimpleUUID and
// WithCustomUUIDFormat switch to the 36-character form, the 32-character
// form without hyphens, or a caller-supplied rendering of a fresh UUID.
// Generator installs an arbitrary function.
//
// # Reading the identifier
//
// Two lookups are available to handler code:
//
//	id := requestid.FromRequest(r)          // per-request ID, created on demand
//	cur, ok := requestid.Current(r.Context()) // current ID, absent outside the middleware
//
// Both live in a scope stored in the request context rather than in any
// goroutine- or thread-bound state, so goroutines spawned by a handler see the
// same values as long as they are given the request context.
//
// # Logging
//
// LogHook adds the current identifier to zerolog events that carry a request
// context, and Logger derives a child logger with the identifier attached.
package requestid
