package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = errors.Errorf("parsing midi file %v: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrapf(err, "parsing midi file %v", filepath)
	}
	return res, nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "creating midi file")
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(err, fmt.Sprintf("writing midi file %v", filepath))
	}
	return f.Close()
}
