package api

import "errors"

// Sentinel errors classifying request outcomes. Callers match them with
// errors.Is: ErrUnauthorized means the session is no longer valid and the
// user should re-login, ErrValidation means the input was rejected,
// ErrUnavailable and ErrServer are transient and worth retrying.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("request rejected")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)
