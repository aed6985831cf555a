package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/store"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	renderScales    bool
	renderArpeggio  bool
	renderBPM       float64
	renderInversion int
)

func init() {
	flags := renderCmd.Flags()
	flags.BoolVar(&renderScales, "scales", false, "treat formula names as scales")
	flags.BoolVar(&renderArpeggio, "arpeggio", false, "play notes one at a time")
	flags.Float64Var(&renderBPM, "bpm", 120, "tempo")
	flags.IntVar(&renderInversion, "inversion", 0, "invert every chord this many notes")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(identifyCmd)
}

// parseStep reads "C4:major".
func parseStep(st *store.Store, step string) (model.Notes, error) {
	parts := strings.SplitN(step, ":", 2)
	if len(parts) != 2 {
		return nil, errors.Wrapf(theoryerr.ErrInvalidArgument, "step %q is not root:formula", step)
	}
	root, err := pitch.Parse(parts[0])
	if err != nil {
		return nil, err
	}
	if renderScales {
		s, err := st.Scale(root.Name, root.Octave, parts[1])
		return model.Convert[model.NotesKind](s), err
	}
	c, err := st.Chord(root.Name, root.Octave, parts[1])
	if err != nil {
		return nil, err
	}
	if renderInversion != 0 {
		chord.InvertInPlace(c, renderInversion)
	}
	return model.Convert[model.NotesKind](c), nil
}

var renderCmd = &cobra.Command{
	Use:     "render <out.mid> <root:formula>...",
	Short:   "Writes chords or scales to a standard midi file",
	Example: "  fretdex render progression.mid C4:major A3:minor F3:major G3:dominant7",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		var steps []model.Notes
		for _, arg := range args[1:] {
			notes, err := parseStep(st, arg)
			if err != nil {
				return err
			}
			steps = append(steps, notes)
		}

		opts := midi.DefaultRenderOptions()
		opts.Arpeggiate = renderArpeggio
		opts.BPM = renderBPM
		s, err := midi.Render(steps, opts)
		if err != nil {
			return err
		}
		if err := midi.WriteMidiFile(args[0], s); err != nil {
			return err
		}
		log.Info().Str("path", args[0]).Int("steps", len(steps)).Msg("midi file written")
		return nil
	},
}

var identifyCmd = &cobra.Command{
	Use:   "identify <file.mid>",
	Short: "Lists the chords in a midi file with their inversion and intervals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, tn := range midi.ExtractChords(s) {
			var names []string
			for _, mnn := range tn.Notes {
				p, err := pitch.FromMnn(mnn)
				if err != nil {
					return err
				}
				names = append(names, p.String())
			}
			fmt.Fprintf(w, "%8.3fs  %-20v inversion %v\n", float64(tn.Offset)/1e6, strings.Join(names, " "), chord.InversionNumber(tn.Notes))

			for _, mnn := range tn.Notes[1:] {
				delta, err := interval.SemitonesBetweenMnn(tn.Notes[0], mnn)
				if err != nil {
					return err
				}
				octaves, name, err := interval.Name(delta, interval.Quality)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "          %+3v  %v (%v octaves)\n", delta, name, octaves)
			}
		}
		return nil
	},
}
