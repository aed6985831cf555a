// Package pitch converts between note name + octave, midi note number and
// frequency. Every function is pure.
package pitch

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

const (
	MinMnn = 0
	MaxMnn = 127

	MinOctave = -1
	MaxOctave = 9

	// A4
	ConcertMnn       = 69
	ConcertFrequency = 440.0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Names returns the 12 recognized spellings, C first.
func Names() []string {
	return append([]string(nil), noteNames[:]...)
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NoteIndex returns the position of name within the octave, C = 0.
func NoteIndex(name string) (int, error) {
	n := normalize(name)
	for i, v := range noteNames {
		if v == n {
			return i, nil
		}
	}
	return 0, errors.Wrapf(theoryerr.ErrInvalidName, "note %q", name)
}

func ValidMnn(mnn int) bool {
	return mnn >= MinMnn && mnn <= MaxMnn
}

func checkMnn(mnn int) error {
	if !ValidMnn(mnn) {
		return errors.Wrapf(theoryerr.ErrOutOfRange, "midi note number %v", mnn)
	}
	return nil
}

// MidiNoteNumber does not range check; an octave outside -1..9 yields a number
// FromMnn will refuse.
func MidiNoteNumber(name string, octave int) (int, error) {
	idx, err := NoteIndex(name)
	if err != nil {
		return 0, err
	}
	return idx + 12*(octave+1), nil
}

// Frequency is equal-tempered with A4 = 440 Hz.
func Frequency(mnn int) (float64, error) {
	if err := checkMnn(mnn); err != nil {
		return 0, err
	}
	return frequency(mnn), nil
}

func frequency(mnn int) float64 {
	return ConcertFrequency * math.Pow(2, float64(mnn-ConcertMnn)/12)
}

func FromMnn(mnn int) (model.Pitch, error) {
	if err := checkMnn(mnn); err != nil {
		return model.Pitch{}, err
	}
	return model.Pitch{
		Name:      noteNames[mnn%12],
		Octave:    mnn/12 - 1,
		Mnn:       mnn,
		Frequency: frequency(mnn),
	}, nil
}

func FromNameOctave(name string, octave int) (model.Pitch, error) {
	mnn, err := MidiNoteNumber(name, octave)
	if err != nil {
		return model.Pitch{}, err
	}
	if !ValidMnn(mnn) {
		return model.Pitch{}, errors.Wrapf(theoryerr.ErrOutOfRange, "%v%v", normalize(name), octave)
	}
	return FromMnn(mnn)
}

// FromFrequency snaps freq to the nearest midi note number, so a round trip
// through frequency loses anything between semitones.
func FromFrequency(freq float64) (model.Pitch, error) {
	if !(freq > 0) || math.IsInf(freq, 1) {
		return model.Pitch{}, errors.Wrapf(theoryerr.ErrInvalidFrequency, "%v Hz", freq)
	}
	mnn := math.Round(12*math.Log2(freq/ConcertFrequency) + ConcertMnn)
	if mnn < MinMnn || mnn > MaxMnn {
		return model.Pitch{}, errors.Wrapf(theoryerr.ErrOutOfRange, "%v Hz", freq)
	}
	return FromMnn(int(mnn))
}

// Parse reads scientific pitch notation such as "A4", "c#3" or "G-1".
func Parse(s string) (model.Pitch, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if split <= 0 {
		return model.Pitch{}, errors.Wrapf(theoryerr.ErrInvalidName, "pitch %q", s)
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return model.Pitch{}, errors.Wrapf(theoryerr.ErrInvalidName, "pitch %q", s)
	}
	return FromNameOctave(s[:split], octave)
}
