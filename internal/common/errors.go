// Package common defines shared constants and sentinel errors used across
// GophDrive components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Resource-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic flow-control errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors raised before a request is sent.
	ErrorEmptyName     = errors.New("name must not be empty")
	ErrorEmptyPassword = errors.New("password must not be empty")

	// Credential lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
