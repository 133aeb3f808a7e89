// Package api contains the client-side building blocks for talking to the
// GophDrive backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic gateway contract (see the Gateway interface):
//     one typed method per user intent — Login/Register/Logout/Me,
//     Dashboard, file upload/rename/delete/download, folder
//     create/rename/delete/contents, and a Ping liveness probe.
//  2. A concrete HTTP implementation (see Client) that owns the single
//     request chokepoint: it attaches the credential (bearer header or
//     cookie jar, selected at construction), encodes JSON and multipart
//     bodies, and funnels every outcome — including transport failures —
//     into a normalized Result. Gateway methods never panic and never
//     surface transport errors to callers.
//  3. Centralized stale-credential cleanup: any response carrying a
//     redirect to the login view (or a 401 status) clears the session
//     store before the result is returned, so every caller gets the
//     cleanup for free.
//
// # Error Handling
//
// Every gateway call resolves to a result whose OK field reports success
// and whose Message field carries a non-empty diagnostic on failure. No
// retries are attempted: one user action maps to exactly one HTTP request.
// The only error-returning method is Ping, which exposes reachability as
// ErrUnavailable for the online-status watcher.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation/timeouts.
//
// See Also
//
//   - Interface: Gateway
//   - HTTP impl: Client
//   - Results:   Result and its per-endpoint variants in result.go
//   - Errors:    ErrUnavailable, ErrUnauthorized
package api
