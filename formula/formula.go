// Package formula turns a root pitch and a list of semitone offsets into a
// chord or scale.
package formula

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

type Direction uint8

const (
	Up Direction = 1 << iota
	Down
)

// Expand adds every offset of f to the root. Results above 127 are kept; they
// just never match anything downstream.
func Expand[K any](root model.Pitch, f model.Formula) model.Collection[K] {
	res := make(model.Collection[K], len(f))
	for i, offset := range f {
		res[i] = root.Mnn + offset
	}
	return res
}

// ExpandDirected only knows how to build upward. Down on its own yields an
// empty collection.
func ExpandDirected[K any](root model.Pitch, f model.Formula, dir Direction) (model.Collection[K], error) {
	if dir&(Up|Down) == 0 {
		return nil, errors.Wrap(theoryerr.ErrInvalidArgument, "expansion needs a direction")
	}
	if dir&Up == 0 {
		return model.Collection[K]{}, nil
	}
	return Expand[K](root, f), nil
}

// Validate checks that f starts on the root and never goes below it.
func Validate(f model.Formula) error {
	if len(f) == 0 {
		return errors.Wrap(theoryerr.ErrInvalidArgument, "empty formula")
	}
	if f[0] != 0 {
		return errors.Wrapf(theoryerr.ErrInvalidArgument, "formula starts at %v, not 0", f[0])
	}
	for _, offset := range f {
		if offset < 0 {
			return errors.Wrapf(theoryerr.ErrInvalidArgument, "negative offset %v", offset)
		}
	}
	return nil
}
