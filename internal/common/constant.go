package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header carrying a per-request identifier
// for correlating client requests with server logs.
const RequestIDHeaderName = "X-Request-Id"

// LoginRedirectPath is the redirect value servers send when a request was
// made with a missing or invalid credential.
const LoginRedirectPath = "/login"
