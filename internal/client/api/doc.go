// Package api contains the client-side contract for the i-Stokvel REST
// backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic API contracts, split per backend surface the way
//     the application consumes them (AuthAPI, UserAPI, WalletAPI, AdminAPI,
//     StokvelAPI, KYCAPI), plus the combined Client interface.
//  2. A concrete HTTP/JSON implementation (HTTPClient) that injects the
//     bearer session token, tags every request with a correlation id, and
//     maps transport and server failures to typed errors.
//
// # Error Handling
//
// Network-level failures are exposed as ErrUnavailable; server-reported
// failures carry the backend's error payload as *Error, whose Detail method
// returns the human-readable message upper layers surface to users. Match
// sentinels with errors.Is and payload errors with errors.As.
//
// All operations accept context.Context; cancellation and timeouts are
// delegated to the underlying http.Client, per the session layer's design.
package api
