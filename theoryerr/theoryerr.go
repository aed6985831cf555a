// Package theoryerr holds the error kinds every fretdex operation reports.
// Callers match them with errors.Is; call sites wrap them with context.
package theoryerr

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidName       = errors.New("invalid note name")
	ErrOutOfRange        = errors.New("out of range")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrInvalidInterval is an OutOfRange error for semitone distances the
	// naming table cannot resolve.
	ErrInvalidInterval = errors.Wrap(ErrOutOfRange, "invalid interval")
)

// Kind returns the sentinel err was built from, or nil if it is none of ours.
func Kind(err error) error {
	for _, kind := range []error{
		ErrInvalidInterval,
		ErrInvalidName,
		ErrOutOfRange,
		ErrInvalidFrequency,
		ErrNotFound,
		ErrInvalidArgument,
		ErrAllocationFailure,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
