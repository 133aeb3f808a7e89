package session

import (
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry inspects a bearer token's exp claim without verifying the
// signature. The server remains the authority on validity; this is only an
// advisory so the UI can warn about credentials that are certainly stale.
//
// Returns common.ErrInvalidToken for tokens that do not parse as JWTs
// (opaque session identifiers, for example) and a zero time with nil error
// for JWTs that carry no exp claim.
func TokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, common.ErrInvalidToken
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// TokenExpired reports whether the token is a JWT whose exp claim lies in
// the past. Opaque tokens and JWTs without exp are never reported expired.
func TokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil || exp.IsZero() {
		return false
	}
	return exp.Before(now)
}
