package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var intervalStyle string

func init() {
	intervalCmd.Flags().StringVar(&intervalStyle, "style", "quality", "quality (minor/major/perfect) or altered (augmented/diminished)")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <from> <to>",
	Short: "Names the interval between two pitches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := interval.ParseStyle(intervalStyle)
		if err != nil {
			return err
		}
		from, err := parsePitchArg(args[0])
		if err != nil {
			return err
		}
		to, err := parsePitchArg(args[1])
		if err != nil {
			return err
		}
		d, err := interval.Describe(from, to, style)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v: %v semitones, %v (%v octaves)\n", from, to, d.Semitones, d.Name, d.Octaves)
		return nil
	},
}

func parseInt(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(theoryerr.ErrInvalidArgument, "%q is not a number", arg)
	}
	return n, nil
}
