package service

import "errors"

// Backend failure categories. Backends wrap one of these so callers can
// branch with errors.Is.
var (
	ErrConnectivity = errors.New("connection failed")
	ErrAuth         = errors.New("authentication failed")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrRemote       = errors.New("remote error")
	ErrRequest      = errors.New("request rejected")
	ErrParse        = errors.New("malformed response")
)
