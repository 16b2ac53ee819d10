// Package common defines shared constants and sentinel errors used across
// the i-Stokvel client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session token errors (malformed or expired credential).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
