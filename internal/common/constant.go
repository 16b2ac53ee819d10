package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// session token on outbound API requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id so backend logs
// can be matched against client operations.
const RequestIDHeaderName = "X-Request-Id"
