// Package interval measures the distance between two pitches and names it.
package interval

import (
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
)

// Style picks which of the two names each table entry carries.
type Style int

const (
	// Quality names read minor, major, perfect.
	Quality Style = iota
	// Altered names read augmented, diminished.
	Altered
)

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quality":
		return Quality, nil
	case "altered":
		return Altered, nil
	}
	return Quality, errors.Wrapf(theoryerr.ErrInvalidArgument, "interval style %q", s)
}

// Interval is a named distance of 0 to 24 semitones. Its value is its size.
type Interval int

const (
	PerfectUnison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	PerfectOctave
	MinorNinth
	MajorNinth
	MinorTenth
	MajorTenth
	PerfectEleventh
	AugmentedEleventh
	PerfectTwelfth
	MinorThirteenth
	MajorThirteenth
	MinorFourteenth
	MajorFourteenth
	PerfectFifteenth
)

var names = [25][2]string{
	{"Perfect Unison", "Diminished 2nd"},
	{"Minor 2nd", "Augmented Unison"},
	{"Major 2nd", "Diminished 3rd"},
	{"Minor 3rd", "Augmented 2nd"},
	{"Major 3rd", "Diminished 4th"},
	{"Perfect 4th", "Augmented 3rd"},
	{"Augmented 4th", "Diminished 5th"},
	{"Perfect 5th", "Diminished 6th"},
	{"Minor 6th", "Augmented 5th"},
	{"Major 6th", "Diminished 7th"},
	{"Minor 7th", "Augmented 6th"},
	{"Major 7th", "Diminished Octave"},
	{"Perfect Octave", "Augmented 7th"},
	{"Minor 9th", "Augmented Octave"},
	{"Major 9th", "Diminished 10th"},
	{"Minor 10th", "Augmented 9th"},
	{"Major 10th", "Diminished 11th"},
	{"Perfect 11th", "Augmented 10th"},
	{"Augmented 11th", "Diminished 12th"},
	{"Perfect 12th", "Diminished 13th"},
	{"Minor 13th", "Augmented 12th"},
	{"Major 13th", "Diminished 14th"},
	{"Minor 14th", "Augmented 13th"},
	{"Major 14th", "Diminished 15th"},
	{"Perfect 15th", "Augmented 14th"},
}

func (iv Interval) Semitones() int {
	return int(iv)
}

func (iv Interval) Valid() bool {
	return iv >= PerfectUnison && iv <= PerfectFifteenth
}

func (iv Interval) Name(style Style) string {
	if !iv.Valid() {
		return ""
	}
	return names[iv][styleIndex(style)]
}

func (iv Interval) String() string {
	return iv.Name(Quality)
}

func styleIndex(style Style) int {
	if style == Altered {
		return 1
	}
	return 0
}

// ParseInterval accepts either name of an interval, ignoring case.
func ParseInterval(name string) (Interval, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, pair := range names {
		for _, n := range pair {
			if strings.ToLower(n) == want {
				return Interval(i), nil
			}
		}
	}
	return 0, errors.Wrapf(theoryerr.ErrNotFound, "interval %q", name)
}

// MnnAt is a plain add; the result is not range checked.
func MnnAt(rootMnn int, iv Interval) int {
	return rootMnn + iv.Semitones()
}

// SemitonesBetween is signed: negative when b is below a.
func SemitonesBetween(a, b model.Pitch) (int, error) {
	return SemitonesBetweenMnn(a.Mnn, b.Mnn)
}

func SemitonesBetweenMnn(a, b int) (int, error) {
	for _, mnn := range []int{a, b} {
		if !pitch.ValidMnn(mnn) {
			return 0, errors.Wrapf(theoryerr.ErrOutOfRange, "midi note number %v", mnn)
		}
	}
	return b - a, nil
}

// Name resolves a signed semitone distance to an octave count and an
// interval name.
//
// Up to two octaves the table is read directly. Wider upward distances count
// octaves by 12 but index the table modulo 24, so 25 semitones is two octaves
// and a minor 2nd. Downward distances name the inversion of the remainder
// with a negative octave count: -14 is two octaves down and a minor 7th.
func Name(delta int, style Style) (octaves int, name string, err error) {
	col := styleIndex(style)
	switch {
	case delta >= 0 && delta <= 24:
		return 0, names[delta][col], nil
	case delta >= 25 && delta <= 127:
		return delta / 12, names[delta%24][col], nil
	case delta >= -127 && delta <= -1:
		m := util.Abs(delta)
		return -(m / 12) - 1, names[12-m%12][col], nil
	}
	return 0, "", errors.Wrapf(theoryerr.ErrInvalidInterval, "%v semitones", delta)
}

// Describe measures and names the distance from a to b.
func Describe(a, b model.Pitch, style Style) (model.IntervalDescription, error) {
	delta, err := SemitonesBetween(a, b)
	if err != nil {
		return model.IntervalDescription{}, err
	}
	octaves, name, err := Name(delta, style)
	if err != nil {
		return model.IntervalDescription{}, err
	}
	return model.IntervalDescription{Semitones: delta, Octaves: octaves, Name: name}, nil
}
