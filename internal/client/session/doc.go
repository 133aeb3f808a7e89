// Package session owns the client's authentication credential.
//
// # Overview
//
// The package provides:
//  1. The Store contract: Get/Set/Clear plus the IsAuthenticated presence
//     check. At most one credential is held at a time; Set overwrites,
//     Clear is idempotent. Presence of a credential does not guarantee
//     server-side validity — it must be revalidated by use.
//  2. MemoryStore, keeping the credential for the life of the process.
//  3. SQLiteStore, persisting the credential across restarts in a local
//     SQLite database managed by embedded goose migrations.
//  4. TokenExpiry, an advisory that inspects a bearer token's exp claim
//     without verifying the signature. It never changes IsAuthenticated
//     semantics; callers may use it to warn about stale credentials.
//
// Stores perform no network calls. All implementations are safe for
// concurrent use.
package session
