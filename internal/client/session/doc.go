// Package session owns the client-side authentication lifecycle: signup,
// login, logout, token/user persistence, expiry and verification checks,
// role queries, and the verification-code flows.
//
// # Session unit
//
// The bearer token and the cached user record form one unit: both are
// written together on login and cleared together on logout or whenever a
// validity check finds the session unusable. A token without a usable,
// verified user (or vice versa) is "not authenticated".
//
// # Failure semantics
//
// Every network-calling operation converts errors into a value carrying
// Success and Message; callers inspect results instead of handling errors.
// Logout additionally guarantees completion: the local clear and the
// redirect to the login screen happen no matter what fails inside.
// CurrentUser and IsAuthenticated never fail; they answer nil/false and
// clean up silently.
package session
