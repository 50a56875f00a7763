package eztr

import "errors"

var (
	ErrDuplicateAssignment = errors.New("handle id already assigned")
	ErrAllocation          = errors.New("custom message ids exhausted")
	ErrOutsideInit         = errors.New("registration outside init")
	ErrInitialized         = errors.New("registry already initialized")
	ErrNoCallback          = errors.New("empty message requires a callback")
	ErrUnknownHandle       = errors.New("unknown handle")
	ErrNotVanilla          = errors.New("text id above highest vanilla id")
	ErrNilBuffer           = errors.New("nil buffer")
	ErrIDTaken             = errors.New("text id owned by another handle")
	ErrIDRange             = errors.New("text id outside the custom range")
)
