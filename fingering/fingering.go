// Package fingering lays a chord or scale out on a fretted instrument.
package fingering

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

var unused = model.FrettedNote{
	Mnn:           model.Unused,
	IntervalIndex: model.Unused,
	String:        model.Unused,
	Fret:          model.Unused,
}

// For walks every fret of every string and marks the ones whose pitch is in c.
// A marked fret records which position of c it matched; the rest are unused
// sentinels. Fingers are not assigned.
func For[K any](t model.Tuning, c model.Collection[K]) (model.Fingering, error) {
	res := make(model.Fingering, len(t.Strings))
	for s, str := range t.Strings {
		if str.NumberOfFrets < 0 {
			return nil, errors.Wrapf(theoryerr.ErrInvalidArgument, "string %v has %v frets", s+1, str.NumberOfFrets)
		}
		open, err := pitch.FromNameOctave(str.OpenNoteName, str.OpenNoteOctave)
		if err != nil {
			return nil, errors.Wrapf(err, "string %v", s+1)
		}

		row := make([]model.FrettedNote, str.NumberOfFrets)
		for f := range row {
			candidate := open.Mnn + f
			i := indexOf(c, candidate)
			if i < 0 {
				row[f] = unused
				continue
			}
			row[f] = model.FrettedNote{
				Mnn:           candidate,
				IntervalIndex: i,
				String:        s + 1,
				Fret:          f,
			}
		}
		res[s] = row
	}
	return res, nil
}

func indexOf[K any](c model.Collection[K], mnn int) int {
	for i, v := range c {
		if v == mnn {
			return i
		}
	}
	return -1
}

// Positions lists the frets that are in use, string by string.
func Positions(f model.Fingering) []model.FrettedNote {
	var res []model.FrettedNote
	for _, row := range f {
		for _, n := range row {
			if !n.IsUnused() {
				res = append(res, n)
			}
		}
	}
	return res
}

// Render draws one line per string, string 1 on top, with the formula degree
// of each used fret (root = 1) and '-' elsewhere.
func Render(w io.Writer, t model.Tuning, f model.Fingering) error {
	for s := range f {
		var b strings.Builder
		label := "?"
		if s < len(t.Strings) {
			label = fmt.Sprintf("%v%v", t.Strings[s].OpenNoteName, t.Strings[s].OpenNoteOctave)
		}
		fmt.Fprintf(&b, "%-4v|", label)
		for _, n := range f[s] {
			if n.IsUnused() {
				b.WriteString("--|")
			} else {
				fmt.Fprintf(&b, "%2v|", n.IntervalIndex+1)
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
