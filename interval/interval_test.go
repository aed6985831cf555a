package interval

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemitonesBetween(t *testing.T) {
	assert := assert.New(t)

	a, _ := pitch.FromMnn(60)
	b, _ := pitch.FromMnn(62)
	d, err := SemitonesBetween(a, b)
	assert.NoError(err)
	assert.Equal(2, d)

	d, err = SemitonesBetween(b, a)
	assert.NoError(err)
	assert.Equal(-2, d)

	_, err = SemitonesBetweenMnn(60, 128)
	assert.True(errors.Is(err, theoryerr.ErrOutOfRange))
	_, err = SemitonesBetweenMnn(-1, 60)
	assert.True(errors.Is(err, theoryerr.ErrOutOfRange))
}

func TestName(t *testing.T) {
	cases := []struct {
		delta   int
		style   Style
		octaves int
		name    string
	}{
		{0, Quality, 0, "Perfect Unison"},
		{2, Quality, 0, "Major 2nd"},
		{7, Quality, 0, "Perfect 5th"},
		{6, Altered, 0, "Diminished 5th"},
		{12, Quality, 0, "Perfect Octave"},
		{14, Quality, 0, "Major 9th"},
		{23, Quality, 0, "Major 14th"},
		{24, Quality, 0, "Perfect 15th"},
		{24, Altered, 0, "Augmented 14th"},
		{-14, Quality, -2, "Minor 7th"},
		{-1, Quality, -1, "Major 7th"},
		{-7, Quality, -1, "Perfect 4th"},
		{-5, Altered, -1, "Diminished 6th"},
		{-12, Quality, -2, "Perfect Octave"},
		{-127, Quality, -11, "Perfect 4th"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v semitones", c.delta), func(t *testing.T) {
			octaves, name, err := Name(c.delta, c.style)
			require.NoError(t, err)
			assert.Equal(t, c.octaves, octaves)
			assert.Equal(t, c.name, name)
		})
	}
}

func TestNameAboveTwoOctavesKeepsMixedModulus(t *testing.T) {
	cases := []struct {
		delta   int
		octaves int
		name    string
	}{
		{25, 2, "Minor 2nd"},
		{36, 3, "Perfect Octave"},
		{38, 3, "Major 9th"},
		{48, 4, "Perfect Unison"},
		{127, 10, "Perfect 5th"},
	}

	for _, c := range cases {
		octaves, name, err := Name(c.delta, Quality)
		assert.NoError(t, err)
		assert.Equal(t, c.octaves, octaves, "%v", c.delta)
		assert.Equal(t, c.name, name, "%v", c.delta)
	}
}

func TestNameRejectsOutsideMidiRange(t *testing.T) {
	for _, delta := range []int{128, -128, 1000} {
		_, _, err := Name(delta, Quality)
		assert.True(t, errors.Is(err, theoryerr.ErrInvalidInterval))
		assert.True(t, errors.Is(err, theoryerr.ErrOutOfRange))
	}
}

func TestEveryIntervalParsesFromBothNames(t *testing.T) {
	for iv := PerfectUnison; iv <= PerfectFifteenth; iv++ {
		for _, style := range []Style{Quality, Altered} {
			got, err := ParseInterval(iv.Name(style))
			require.NoError(t, err)
			assert.Equal(t, iv, got)
		}
		assert.Equal(t, int(iv), iv.Semitones())
	}
}

func TestParseInterval(t *testing.T) {
	assert := assert.New(t)

	iv, err := ParseInterval("  perfect 5TH ")
	assert.NoError(err)
	assert.Equal(PerfectFifth, iv)

	_, err = ParseInterval("Major 5th")
	assert.True(errors.Is(err, theoryerr.ErrNotFound))
	assert.Equal("", Interval(25).Name(Quality))
}

func TestMnnAt(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(67, MnnAt(60, PerfectFifth))
	assert.Equal(84, MnnAt(60, PerfectFifteenth))
	assert.Equal(131, MnnAt(120, MajorSeventh))
}

func TestParseStyle(t *testing.T) {
	assert := assert.New(t)
	s, err := ParseStyle("Altered")
	assert.NoError(err)
	assert.Equal(Altered, s)
	s, err = ParseStyle("")
	assert.NoError(err)
	assert.Equal(Quality, s)
	_, err = ParseStyle("jazz")
	assert.True(errors.Is(err, theoryerr.ErrInvalidArgument))
}

func TestDescribe(t *testing.T) {
	a, _ := pitch.FromNameOctave("E", 4)
	b, _ := pitch.FromNameOctave("D", 3)
	d, err := Describe(a, b, Quality)
	require.NoError(t, err)
	assert.Equal(t, -14, d.Semitones)
	assert.Equal(t, -2, d.Octaves)
	assert.Equal(t, "Minor 7th", d.Name)
}
