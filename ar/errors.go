package ar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChecksum is returned when the record trailer does not match
	// the computed checksum.
	ErrInvalidChecksum = errors.New("ar: invalid checksum")

	// ErrInvalidKey is returned when the key byte is too large to index a
	// substitution table.
	ErrInvalidKey = errors.New("ar: invalid cipher key")

	// ErrInvalidMode is returned for a mode byte that selects no known
	// cipher variant.
	ErrInvalidMode = errors.New("ar: invalid cipher mode")

	// ErrUnimplemented is matched by errors for modes whose cipher is not
	// yet known.
	ErrUnimplemented = errors.New("ar: cipher mode not implemented")

	// ErrShortRecord is returned when fewer than RecordSize bytes are
	// passed to Decode.
	ErrShortRecord = errors.New("ar: short record")
)

// UnimplementedError records the reserved mode that was selected
type UnimplementedError struct {
	Mode Mode
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("ar: cipher mode %d not implemented", uint8(e.Mode))
}

// Is reports whether target is ErrUnimplemented
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}
