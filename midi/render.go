package midi

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

type RenderOptions struct {
	Channel  uint8
	Velocity uint8
	BPM      float64
	// Duration is how many ticks each chord, or each arpeggiated note, lasts.
	Duration   uint32
	Arpeggiate bool
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Channel:  0,
		Velocity: 100,
		BPM:      120,
		Duration: TicksPerQuarter * 2,
	}
}

// Render writes the collections one after another on a single track. Notes
// go out in collection order, so ExtractChords gets the same order back.
func Render[K any](collections []model.Collection[K], opts RenderOptions) (*smf.SMF, error) {
	if opts.Channel > 15 || opts.Velocity == 0 || opts.Velocity > 127 || opts.Duration == 0 {
		return nil, errors.Wrapf(theoryerr.ErrInvalidArgument, "render options %+v", opts)
	}
	for _, c := range collections {
		for _, n := range c {
			if !pitch.ValidMnn(n) {
				return nil, errors.Wrapf(theoryerr.ErrOutOfRange, "cannot render midi note number %v", n)
			}
		}
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	if opts.BPM > 0 {
		tr.Add(0, smf.MetaTempo(opts.BPM))
	}

	var rest uint32
	for _, c := range collections {
		if len(c) == 0 {
			rest += opts.Duration
			continue
		}
		if opts.Arpeggiate {
			for _, n := range c {
				tr.Add(rest, gomidi.NoteOn(opts.Channel, uint8(n), opts.Velocity))
				tr.Add(opts.Duration, gomidi.NoteOff(opts.Channel, uint8(n)))
				rest = 0
			}
			continue
		}
		for _, n := range c {
			tr.Add(rest, gomidi.NoteOn(opts.Channel, uint8(n), opts.Velocity))
			rest = 0
		}
		delta := opts.Duration
		for _, n := range c {
			tr.Add(delta, gomidi.NoteOff(opts.Channel, uint8(n)))
			delta = 0
		}
	}
	tr.Close(rest)

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}
