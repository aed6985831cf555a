// Package store keeps the named chord formulas, scale formulas and tunings
// every query looks up. A Store is filled once, then only read.
package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/fretdex/formula"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
)

var log = &logging.Log

//go:embed defaults.json
var defaults []byte

// Document is the persisted shape of a Store.
type Document struct {
	Chords  map[string]model.Formula `json:"chords"`
	Scales  map[string]model.Formula `json:"scales"`
	Tunings map[string]model.Tuning  `json:"tunings"`
}

type Store struct {
	chords  map[string]model.Formula
	scales  map[string]model.Formula
	tunings map[string]model.Tuning
}

func New() *Store {
	s := &Store{}
	s.Clear()
	return s
}

// Default is a Store holding the built-in tables.
func Default() (*Store, error) {
	s := New()
	if err := s.Load(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, "built-in store")
	}
	return s, nil
}

// Open loads path, or the built-in tables when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	s := New()
	if err := s.LoadFile(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Clear drops every table.
func (s *Store) Clear() {
	s.chords = make(map[string]model.Formula)
	s.scales = make(map[string]model.Formula)
	s.tunings = make(map[string]model.Tuning)
}

// Load adds everything in r to s. Nothing is added unless all of it is valid.
func (s *Store) Load(r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return errors.Wrap(err, "decoding store")
	}

	staged := New()
	if err := staged.AddDocument(doc); err != nil {
		return err
	}
	s.merge(staged)
	log.Debug().
		Int("chords", len(s.chords)).
		Int("scales", len(s.scales)).
		Int("tunings", len(s.tunings)).
		Msg("store loaded")
	return nil
}

func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening store")
	}
	defer f.Close()
	return errors.Wrap(s.Load(f), path)
}

// Reload replaces the contents of s with r. On error s keeps what it had.
func (s *Store) Reload(r io.Reader) error {
	fresh := New()
	if err := fresh.Load(r); err != nil {
		return err
	}
	s.Clear()
	s.merge(fresh)
	return nil
}

func (s *Store) merge(other *Store) {
	for k, v := range other.chords {
		s.chords[k] = v
	}
	for k, v := range other.scales {
		s.scales[k] = v
	}
	for k, v := range other.tunings {
		s.tunings[k] = v
	}
}

func (s *Store) AddDocument(doc Document) error {
	for name, f := range doc.Chords {
		if err := s.AddChord(name, f); err != nil {
			return err
		}
	}
	for name, f := range doc.Scales {
		if err := s.AddScale(name, f); err != nil {
			return err
		}
	}
	for name, t := range doc.Tunings {
		if err := s.AddTuning(name, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) AddChord(name string, f model.Formula) error {
	if err := formula.Validate(f); err != nil {
		return errors.Wrapf(err, "chord %q", name)
	}
	s.chords[name] = clone(f)
	return nil
}

func (s *Store) AddScale(name string, f model.Formula) error {
	if err := formula.Validate(f); err != nil {
		return errors.Wrapf(err, "scale %q", name)
	}
	s.scales[name] = clone(f)
	return nil
}

// AddTuning stores t under name. An empty t.Name takes the key.
func (s *Store) AddTuning(name string, t model.Tuning) error {
	if err := ValidateTuning(t); err != nil {
		return errors.Wrapf(err, "tuning %q", name)
	}
	if t.Name == "" {
		t.Name = name
	}
	t.Strings = append([]model.InstrumentString(nil), t.Strings...)
	s.tunings[name] = t
	return nil
}

func ValidateTuning(t model.Tuning) error {
	for i, str := range t.Strings {
		if _, err := pitch.FromNameOctave(str.OpenNoteName, str.OpenNoteOctave); err != nil {
			return errors.Wrapf(err, "string %v", i+1)
		}
		if str.NumberOfFrets < 0 {
			return errors.Wrapf(theoryerr.ErrInvalidArgument, "string %v has %v frets", i+1, str.NumberOfFrets)
		}
		if !str.Gauge.Valid() {
			return errors.Wrapf(theoryerr.ErrInvalidArgument, "string %v gauge %q", i+1, str.Gauge)
		}
	}
	return nil
}

func (s *Store) ChordFormula(name string) (model.Formula, error) {
	f, ok := s.chords[name]
	if !ok {
		return nil, errors.Wrapf(theoryerr.ErrNotFound, "chord %q", name)
	}
	return clone(f), nil
}

func (s *Store) ScaleFormula(name string) (model.Formula, error) {
	f, ok := s.scales[name]
	if !ok {
		return nil, errors.Wrapf(theoryerr.ErrNotFound, "scale %q", name)
	}
	return clone(f), nil
}

func (s *Store) Tuning(name string) (model.Tuning, error) {
	t, ok := s.tunings[name]
	if !ok {
		return model.Tuning{}, errors.Wrapf(theoryerr.ErrNotFound, "tuning %q", name)
	}
	t.Strings = append([]model.InstrumentString(nil), t.Strings...)
	return t, nil
}

func (s *Store) ChordNames() []string {
	return util.GetKeysSorted(s.chords)
}

func (s *Store) ScaleNames() []string {
	return util.GetKeysSorted(s.scales)
}

func (s *Store) TuningNames() []string {
	return util.GetKeysSorted(s.tunings)
}

// Chord expands the named chord formula upward from rootName in octave.
func (s *Store) Chord(rootName string, octave int, formulaName string) (model.Chord, error) {
	f, err := s.ChordFormula(formulaName)
	if err != nil {
		return nil, err
	}
	root, err := pitch.FromNameOctave(rootName, octave)
	if err != nil {
		return nil, err
	}
	return formula.Expand[model.ChordKind](root, f), nil
}

func (s *Store) Scale(rootName string, octave int, formulaName string) (model.Scale, error) {
	f, err := s.ScaleFormula(formulaName)
	if err != nil {
		return nil, err
	}
	root, err := pitch.FromNameOctave(rootName, octave)
	if err != nil {
		return nil, err
	}
	return formula.Expand[model.ScaleKind](root, f), nil
}

func (s *Store) Document() Document {
	doc := Document{
		Chords:  make(map[string]model.Formula, len(s.chords)),
		Scales:  make(map[string]model.Formula, len(s.scales)),
		Tunings: make(map[string]model.Tuning, len(s.tunings)),
	}
	for k, v := range s.chords {
		doc.Chords[k] = clone(v)
	}
	for k, v := range s.scales {
		doc.Scales[k] = clone(v)
	}
	for k := range s.tunings {
		doc.Tunings[k], _ = s.Tuning(k)
	}
	return doc
}

// Export writes s in the format Load reads.
func (s *Store) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(s.Document()), "encoding store")
}

func (s *Store) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating store file")
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func clone(f model.Formula) model.Formula {
	return append(model.Formula(nil), f...)
}
