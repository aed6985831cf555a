package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

var listCmd = &cobra.Command{
	Use:       "list <chords|scales|tunings>",
	Short:     "Lists the names in the store",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"chords", "scales", "tunings"},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		var names []string
		switch args[0] {
		case "chords":
			names = st.ChordNames()
		case "scales":
			names = st.ScaleNames()
		case "tunings":
			names = st.TuningNames()
		default:
			return errors.Wrapf(theoryerr.ErrInvalidArgument, "cannot list %q", args[0])
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Writes the store as JSON, to stdout without a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return st.Export(cmd.OutOrStdout())
		}
		if err := st.ExportFile(args[0]); err != nil {
			return err
		}
		log.Info().Str("path", args[0]).Msg("store exported")
		return nil
	},
}
