package attribute

import "errors"

var (
	ErrUnknownKind       = errors.New("unknown attribute family")
	ErrInvalidAttribute  = errors.New("invalid attribute")
)
