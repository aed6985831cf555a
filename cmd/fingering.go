package cmd

import (
	"encoding/json"

	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	fingeringChord string
	fingeringScale string
	fingeringJSON  bool
)

func init() {
	flags := fingeringCmd.Flags()
	flags.StringVar(&fingeringChord, "chord", "", "chord formula name")
	flags.StringVar(&fingeringScale, "scale", "", "scale formula name")
	flags.BoolVar(&fingeringJSON, "json", false, "print every fret as JSON instead of a diagram")
	rootCmd.AddCommand(fingeringCmd)
}

var fingeringCmd = &cobra.Command{
	Use:     "fingering <tuning> <root>",
	Short:   "Shows where a chord or scale sits on a fretboard",
	Example: "  fretdex fingering standard E2 --chord major",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		tuning, err := st.Tuning(args[0])
		if err != nil {
			return err
		}
		root, err := pitch.Parse(args[1])
		if err != nil {
			return err
		}

		var notes model.Notes
		switch {
		case fingeringChord != "" && fingeringScale != "":
			return errors.Wrap(theoryerr.ErrInvalidArgument, "--chord and --scale are exclusive")
		case fingeringChord != "":
			c, err := st.Chord(root.Name, root.Octave, fingeringChord)
			if err != nil {
				return err
			}
			notes = model.Convert[model.NotesKind](c)
		case fingeringScale != "":
			s, err := st.Scale(root.Name, root.Octave, fingeringScale)
			if err != nil {
				return err
			}
			notes = model.Convert[model.NotesKind](s)
		default:
			return errors.Wrap(theoryerr.ErrInvalidArgument, "need --chord or --scale")
		}

		f, err := fingering.For(tuning, notes)
		if err != nil {
			return err
		}
		if fingeringJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(f)
		}
		return fingering.Render(cmd.OutOrStdout(), tuning, f)
	},
}
