package core

import "errors"

// Common errors. Callers match with errors.Is; the wrapping message
// carries the specifics (path, valid range).
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyTracked = errors.New("document already tracked")
	ErrInvalidVersion = errors.New("invalid version number")
)
