package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a failure reported by the backend itself: the request reached the
// server and it answered with an error status and, usually, a JSON body
// holding "error" and/or "message" fields.
type Error struct {
	StatusCode int    `json:"-"`
	ErrorText  string `json:"error"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail())
}

// Detail returns the best human-readable message the server provided, or an
// empty string when the body carried none.
func (e *Error) Detail() string {
	if e.ErrorText != "" {
		return e.ErrorText
	}
	return e.Message
}

// Is makes 401 responses match ErrUnauthorized via errors.Is.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == 401
}
