// Package models defines the client-side copies of server-owned entities.
// The server is the sole source of truth; these structs only live as long
// as the view that fetched them.
package models

// User is the authenticated account. Read-only from the client's
// perspective; obtained from login/registration/dashboard responses.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
