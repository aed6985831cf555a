package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.Silence()
}

func mustDefault(t *testing.T) *Store {
	s, err := Default()
	require.NoError(t, err)
	return s
}

func TestDefaultsLoad(t *testing.T) {
	s := mustDefault(t)
	assert := assert.New(t)

	f, err := s.ChordFormula("major")
	assert.NoError(err)
	assert.Equal(model.Formula{0, 4, 7}, f)

	f, err = s.ChordFormula("minor7")
	assert.NoError(err)
	assert.Equal(model.Formula{0, 3, 7, 10}, f)

	tuning, err := s.Tuning("standard")
	assert.NoError(err)
	assert.Equal("standard", tuning.Name)
	assert.Len(tuning.Strings, 6)
	assert.Equal(model.GaugeThin, tuning.Strings[0].Gauge)

	assert.Contains(s.ScaleNames(), "major")
	assert.Contains(s.TuningNames(), "bass_standard")
}

func TestChordAndScaleExpansion(t *testing.T) {
	s := mustDefault(t)
	assert := assert.New(t)

	c, err := s.Chord("C", 4, "major")
	assert.NoError(err)
	assert.Equal(model.Chord{60, 64, 67}, c)

	c, err = s.Chord("F#", 1, "minor7")
	assert.NoError(err)
	assert.Equal(model.Chord{30, 33, 37, 40}, c)

	sc, err := s.Scale("A", 3, "minor_pentatonic")
	assert.NoError(err)
	assert.Equal(model.Scale{57, 60, 62, 64, 67, 69}, sc)
}

func TestLookupErrors(t *testing.T) {
	s := mustDefault(t)
	assert := assert.New(t)

	_, err := s.Chord("C", 4, "nope")
	assert.True(errors.Is(err, theoryerr.ErrNotFound))

	_, err = s.Scale("C", 4, "nope")
	assert.True(errors.Is(err, theoryerr.ErrNotFound))

	_, err = s.Tuning("nope")
	assert.True(errors.Is(err, theoryerr.ErrNotFound))

	_, err = s.Chord("H", 4, "major")
	assert.True(errors.Is(err, theoryerr.ErrInvalidName))

	_, err = s.Chord("C", 11, "major")
	assert.True(errors.Is(err, theoryerr.ErrOutOfRange))
}

func TestReturnedFormulaIsACopy(t *testing.T) {
	s := mustDefault(t)
	f, _ := s.ChordFormula("major")
	f[1] = 3

	again, _ := s.ChordFormula("major")
	assert.Equal(t, model.Formula{0, 4, 7}, again)
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		kind error
	}{
		{"no root", `{"chords": {"bad": [2, 4]}}`, theoryerr.ErrInvalidArgument},
		{"negative", `{"scales": {"bad": [0, -1]}}`, theoryerr.ErrInvalidArgument},
		{"note name", `{"tunings": {"bad": {"strings": [{"open_note_name": "H", "open_note_octave": 2, "number_of_frets": 3, "string_gauge": "thin"}]}}}`, theoryerr.ErrInvalidName},
		{"frets", `{"tunings": {"bad": {"strings": [{"open_note_name": "E", "open_note_octave": 2, "number_of_frets": -3, "string_gauge": "thin"}]}}}`, theoryerr.ErrInvalidArgument},
		{"gauge", `{"tunings": {"bad": {"strings": [{"open_note_name": "E", "open_note_octave": 2, "number_of_frets": 3, "string_gauge": "huge"}]}}}`, theoryerr.ErrInvalidArgument},
		{"octave", `{"tunings": {"bad": {"strings": [{"open_note_name": "E", "open_note_octave": 12, "number_of_frets": 3, "string_gauge": "thin"}]}}}`, theoryerr.ErrOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New()
			err := s.Load(strings.NewReader(c.doc))
			assert.True(t, errors.Is(err, c.kind), "got %v", err)
			assert.Empty(t, s.ChordNames())
			assert.Empty(t, s.ScaleNames())
			assert.Empty(t, s.TuningNames())
		})
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	s := New()
	err := s.Load(strings.NewReader(`{"chords": {"ok": [0, 4, 7]}, "scales": {"bad": [1]}}`))
	assert.Error(t, err)
	assert.Empty(t, s.ChordNames())
}

func TestMalformedJSON(t *testing.T) {
	assert.Error(t, New().Load(strings.NewReader(`{"chords": [`)))
}

func TestTuningNameDefaultsToKey(t *testing.T) {
	s := New()
	require.NoError(t, s.Load(strings.NewReader(`{"tunings": {"mandolin": {"strings": [{"open_note_name": "G", "open_note_octave": 3, "number_of_frets": 17, "string_gauge": "medium"}]}}}`)))
	tuning, err := s.Tuning("mandolin")
	require.NoError(t, err)
	assert.Equal(t, "mandolin", tuning.Name)
}

func TestClearAndReload(t *testing.T) {
	s := mustDefault(t)
	s.Clear()
	assert.Empty(t, s.ChordNames())

	require.NoError(t, s.Reload(strings.NewReader(`{"chords": {"power": [0, 7]}}`)))
	assert.Equal(t, []string{"power"}, s.ChordNames())

	// a failed reload leaves the previous tables in place
	assert.Error(t, s.Reload(strings.NewReader(`{"chords": {"bad": [3]}}`)))
	assert.Equal(t, []string{"power"}, s.ChordNames())
}

func TestExportRoundTrip(t *testing.T) {
	s := mustDefault(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	again := New()
	require.NoError(t, again.Load(&buf))
	assert.Equal(t, s.Document(), again.Document())
}

func TestFileRoundTrip(t *testing.T) {
	s := mustDefault(t)
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, s.ExportFile(path))

	opened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s.ChordNames(), opened.ChordNames())

	_, err = Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenEmptyPathUsesDefaults(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.Contains(t, s.ChordNames(), "major")
}
