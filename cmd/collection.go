package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/spf13/cobra"
)

var chordInversion int

func init() {
	chordCmd.Flags().IntVar(&chordInversion, "inversion", 0, "rotate the chord this many notes")
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(invertCmd)
}

var chordCmd = &cobra.Command{
	Use:     "chord <root> <formula>",
	Short:   "Builds a chord from a root such as C4 and a chord formula name",
	Example: "  fretdex chord C4 major --inversion 1",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		root, err := pitch.Parse(args[0])
		if err != nil {
			return err
		}
		c, err := st.Chord(root.Name, root.Octave, args[1])
		if err != nil {
			return err
		}
		if chordInversion != 0 {
			chord.InvertInPlace(c, chordInversion)
		}
		printCollection(cmd.OutOrStdout(), c)
		fmt.Fprintf(cmd.OutOrStdout(), "inversion: %v\n", chord.InversionNumber(c))
		return nil
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <formula>",
	Short: "Builds a scale from a root such as A3 and a scale formula name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		root, err := pitch.Parse(args[0])
		if err != nil {
			return err
		}
		s, err := st.Scale(root.Name, root.Octave, args[1])
		if err != nil {
			return err
		}
		printCollection(cmd.OutOrStdout(), s)
		return nil
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert <n> <note>...",
	Short: "Sorts the notes and rotates them n places",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		var c model.Chord
		for _, arg := range args[1:] {
			p, err := parsePitchArg(arg)
			if err != nil {
				return err
			}
			c = append(c, p.Mnn)
		}
		inverted := chord.InvertAsNew(c, n)
		printCollection(cmd.OutOrStdout(), inverted)
		fmt.Fprintf(cmd.OutOrStdout(), "inversion: %v\n", chord.InversionNumber(inverted))
		return nil
	},
}

// printCollection lists one note per line; notes past 127 have no name.
func printCollection[K any](w io.Writer, c model.Collection[K]) {
	for i, mnn := range c {
		p, err := pitch.FromMnn(mnn)
		if err != nil {
			fmt.Fprintf(w, "%2v  -    mnn=%v\n", i+1, mnn)
			continue
		}
		fmt.Fprintf(w, "%2v  ", i+1)
		printPitch(w, p)
	}
}
