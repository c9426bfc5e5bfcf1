package show

import (
	"errors"
	"fmt"
)

// Sentinel kinds classify executor/resolver failures so callers can
// use errors.Is against a stable category while the wrapped message
// carries the offending id/name.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicate            = errors.New("duplicate")
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrGdtfUnknown          = errors.New("gdtf unknown")
	ErrDmxModeUnknown       = errors.New("dmx mode unknown")
	ErrAddressOutOfRange    = errors.New("address out of range")
	ErrPatchNotEditing      = errors.New("patch is not in edit mode")
	ErrPatchInvariantViolated = errors.New("patch invariant violated")
)

// NotFoundError reports a missing object reference.
func NotFoundError(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// DuplicateError reports a create collision.
func DuplicateError(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrDuplicate, kind, id)
}

// IndexOutOfBoundsError reports a replace_at/remove_at past the end.
func IndexOutOfBoundsError(length, index int) error {
	return fmt.Errorf("%w: length %d, index %d", ErrIndexOutOfBounds, length, index)
}

// GdtfUnknownError reports a patch referencing an unregistered GDTF
// file name.
func GdtfUnknownError(name string) error {
	return fmt.Errorf("%w: %q", ErrGdtfUnknown, name)
}

// DmxModeUnknownError reports a DMX mode absent from a fixture type.
func DmxModeUnknownError(mode, fixtureType string) error {
	return fmt.Errorf("%w: mode %q on fixture type %q", ErrDmxModeUnknown, mode, fixtureType)
}

// AddressOutOfRangeError reports a derived channel past 512.
func AddressOutOfRangeError(value int) error {
	return fmt.Errorf("%w: %d", ErrAddressOutOfRange, value)
}

// PatchInvariantViolatedError reports a save_edit validation failure.
func PatchInvariantViolatedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrPatchInvariantViolated, reason)
}
