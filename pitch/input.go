package pitch

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

// Input is one of ByNameOctave, ByMnn or ByFrequency.
type Input interface {
	resolve() (model.Pitch, error)
}

type ByNameOctave struct {
	Name   string
	Octave int
}

type ByMnn int

type ByFrequency float64

func (in ByNameOctave) resolve() (model.Pitch, error) {
	return FromNameOctave(in.Name, in.Octave)
}

func (in ByMnn) resolve() (model.Pitch, error) {
	return FromMnn(int(in))
}

func (in ByFrequency) resolve() (model.Pitch, error) {
	return FromFrequency(float64(in))
}

// Resolve builds a Pitch from whichever representation in holds.
func Resolve(in Input) (model.Pitch, error) {
	if in == nil {
		return model.Pitch{}, errors.Wrap(theoryerr.ErrInvalidArgument, "no pitch input")
	}
	return in.resolve()
}
