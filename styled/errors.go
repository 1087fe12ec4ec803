package styled

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a position or range outside the buffer content.
	ErrOutOfRange = errors.New("out of range")
	// ErrStaleRef reports a character reference used after the buffer changed size.
	ErrStaleRef = errors.New("stale character reference")
	// ErrUnknownFormat reports an export format without a tag table.
	ErrUnknownFormat = errors.New("unknown export format")
)

// RangeError describes a rejected position or range.
type RangeError struct {
	Op    string // Method that rejected the argument
	Start int
	End   int // Equal to Start for single positions
	Size  int // Buffer size at the time of the call
}

func (e *RangeError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("%s: position %d out of range for size %d", e.Op, e.Start, e.Size)
	}
	return fmt.Sprintf("%s: range %d..%d out of range for size %d", e.Op, e.Start, e.End, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func posError(op string, pos, size int) error {
	return &RangeError{Op: op, Start: pos, End: pos, Size: size}
}

func rangeError(op string, start, end, size int) error {
	return &RangeError{Op: op, Start: start, End: end, Size: size}
}
