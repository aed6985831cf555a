package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var pitchFreq float64

func init() {
	pitchCmd.Flags().Float64Var(&pitchFreq, "freq", 0, "look up the nearest pitch to a frequency in Hz")
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch [C#4 | midi note number]",
	Short: "Shows a pitch as name, midi note number and frequency",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p model.Pitch
		var err error
		switch {
		case cmd.Flags().Changed("freq"):
			p, err = pitch.FromFrequency(pitchFreq)
		case len(args) == 1:
			p, err = parsePitchArg(args[0])
		default:
			err = errors.Wrap(theoryerr.ErrInvalidArgument, "need a pitch or --freq")
		}
		if err != nil {
			return err
		}
		printPitch(cmd.OutOrStdout(), p)
		return nil
	},
}

// parsePitchArg takes a midi note number or scientific notation.
func parsePitchArg(arg string) (model.Pitch, error) {
	if mnn, err := strconv.Atoi(arg); err == nil {
		return pitch.FromMnn(mnn)
	}
	return pitch.Parse(arg)
}

func printPitch(w io.Writer, p model.Pitch) {
	fmt.Fprintf(w, "%-4v mnn=%-3v freq=%.2f Hz\n", p, p.Mnn, p.Frequency)
}
